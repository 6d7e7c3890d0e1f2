package worker

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"github.com/talentbridge/go-talent-match/internal/config"
	db "github.com/talentbridge/go-talent-match/internal/db/sqlc"
	"github.com/talentbridge/go-talent-match/internal/mail"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

type TaskProcessor interface {
	Start() error
	ProcessTaskEvaluateSavedSearch(ctx context.Context, task *asynq.Task) error
	ProcessTaskSendMatchAlertEmail(ctx context.Context, task *asynq.Task) error
}

type RedisTaskProcessor struct {
	server      *asynq.Server
	store       db.Store
	emailSender mail.EmailSender
	distributor TaskDistributor
	config      config.Config
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store, emailSender mail.EmailSender, distributor TaskDistributor) TaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(
				func(ctx context.Context, task *asynq.Task, err error) {
					// log error
					log.Error().Err(err).Str("type", task.Type()).
						Bytes("payload", task.Payload()).
						Msg("process task failed")
				}),
			Logger: NewLogger(),
		},
	)

	cfg, err := config.LoadConfig("../..")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	return &RedisTaskProcessor{
		server:      server,
		store:       store,
		emailSender: emailSender,
		distributor: distributor,
		config:      cfg,
	}
}

// Start starts the processor
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskEvaluateSavedSearch, processor.ProcessTaskEvaluateSavedSearch)
	mux.HandleFunc(TaskSendMatchAlertEmail, processor.ProcessTaskSendMatchAlertEmail)

	return processor.server.Start(mux)
}
