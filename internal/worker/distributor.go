package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

type TaskDistributor interface {
	DistributeTaskEvaluateSavedSearch(ctx context.Context, payload *PayloadEvaluateSavedSearch, opts ...asynq.Option) error
	DistributeTaskSendMatchAlertEmail(ctx context.Context, payload *PayloadSendMatchAlertEmail, opts ...asynq.Option) error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
