package api

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/talentbridge/go-talent-match/internal/config"
	db "github.com/talentbridge/go-talent-match/internal/db/sqlc"
	"github.com/talentbridge/go-talent-match/internal/esearch"
	"github.com/talentbridge/go-talent-match/internal/worker"
)

func newTestServer(t *testing.T, store db.Store, client esearch.ESearchClient, distributor worker.TaskDistributor) *Server {
	cfg := config.Config{}

	server, err := NewServer(cfg, store, client, distributor)
	require.NoError(t, err)

	return server
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}
