package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/hibiken/asynq"

	"github.com/talentbridge/go-talent-match/internal/api"
	"github.com/talentbridge/go-talent-match/internal/config"
	db "github.com/talentbridge/go-talent-match/internal/db/sqlc"
	"github.com/talentbridge/go-talent-match/internal/esearch"
	"github.com/talentbridge/go-talent-match/internal/mail"
	"github.com/talentbridge/go-talent-match/internal/scheduler"
	"github.com/talentbridge/go-talent-match/internal/worker"
)

func main() {
	// === config, env file ===
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("cannot load env file: ", err)
	}

	// === database ===
	conn, err := sql.Open(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		log.Fatal("cannot connect to the db: ", err)
	}

	store := db.NewStore(conn)

	// `go run ./cmd seed` fills the database with demo candidates
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		store.(*db.SQLStore).LoadTestData(context.Background())
		return
	}

	// === Elasticsearch ===
	ctx := context.Background()
	ctx, err = esearch.LoadCandidatesFromDB(ctx, store)
	if err != nil {
		log.Fatal("cannot load candidates from db: ", err)
	}
	newClient, err := esearch.ConnectWithElasticsearch(cfg.ElasticSearchAddress)
	if err != nil {
		log.Fatal("cannot connect to the elasticsearch: ", err)
	}

	client := esearch.NewClient(newClient)
	err = client.IndexCandidatesAsDocuments(ctx)
	if err != nil {
		log.Fatal("cannot index candidates as documents: ", err)
	}

	// === background workers ===
	redisOpt := asynq.RedisClientOpt{
		Addr: cfg.RedisAddress,
	}

	distributor := worker.NewRedisTaskDistributor(redisOpt)
	emailSender := mail.NewHogSender(cfg.EmailSenderAddress, cfg.SMTPServerAddress)
	go runTaskProcessor(redisOpt, store, emailSender, distributor)

	// === alert scheduler ===
	alertScheduler := scheduler.NewScheduler(store, distributor, cfg.DailyAlertCronSpec, cfg.WeeklyAlertCronSpec)
	if err := alertScheduler.Start(ctx); err != nil {
		log.Fatal("cannot start the alert scheduler: ", err)
	}
	defer alertScheduler.Stop()

	// === HTTP server ===
	server, err := api.NewServer(cfg, store, client, distributor)
	if err != nil {
		log.Fatal("cannot create server: ", err)
	}

	err = server.Start(cfg.ServerAddress)
	if err != nil {
		log.Fatal("cannot start the server:", err)
	}
}

func runTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store, emailSender mail.EmailSender, distributor worker.TaskDistributor) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store, emailSender, distributor)
	if err := taskProcessor.Start(); err != nil {
		log.Fatal("cannot start the task processor: ", err)
	}
}
