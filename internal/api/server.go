package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/talentbridge/go-talent-match/docs"
	"github.com/talentbridge/go-talent-match/internal/config"
	db "github.com/talentbridge/go-talent-match/internal/db/sqlc"
	"github.com/talentbridge/go-talent-match/internal/esearch"
	"github.com/talentbridge/go-talent-match/internal/intent"
	"github.com/talentbridge/go-talent-match/internal/worker"
)

const baseUrl = "/api/v1"

// Server serves HTTP requests for the service
type Server struct {
	config      config.Config
	store       db.Store
	router      *gin.Engine
	client      esearch.ESearchClient
	extractor   *intent.Extractor
	distributor worker.TaskDistributor
}

// NewServer creates a new HTTP server and setups routing
func NewServer(config config.Config, store db.Store, client esearch.ESearchClient, distributor worker.TaskDistributor) (*Server, error) {
	server := &Server{
		config:      config,
		store:       store,
		client:      client,
		extractor:   intent.NewExtractor(intent.DefaultVocabulary()),
		distributor: distributor,
	}

	server.setupRouter()

	return server, nil
}

// setupRouter sets up the HTTP routing
func (server *Server) setupRouter() {
	router := gin.Default()

	routerV1 := router.Group(baseUrl)

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	docs.SwaggerInfo.BasePath = "/api/v1"

	// === candidates ===
	routerV1.POST("/candidates", server.createCandidate)
	routerV1.GET("/candidates/:id", server.getCandidate)
	routerV1.DELETE("/candidates/:id", server.deleteCandidate)

	// === search ===
	routerV1.GET("/candidates/search", server.searchCandidates)
	routerV1.POST("/candidates/ai-search", server.aiSearchCandidates)
	routerV1.GET("/candidates/lookup", server.lookupCandidates)

	// === saved searches ===
	routerV1.POST("/saved-searches", server.createSavedSearch)
	routerV1.GET("/saved-searches", server.listSavedSearches)
	routerV1.GET("/saved-searches/:id", server.getSavedSearch)
	routerV1.PATCH("/saved-searches/:id", server.updateSavedSearch)
	routerV1.DELETE("/saved-searches/:id", server.deleteSavedSearch)
	routerV1.POST("/saved-searches/:id/run", server.runSavedSearch)
	routerV1.PATCH("/saved-searches/:id/active", server.setSavedSearchActive)
	routerV1.PATCH("/saved-searches/:id/alerts", server.setSavedSearchAlerts)

	server.router = router
}

// Start runs the HTTP server on a given address
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func errorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}
