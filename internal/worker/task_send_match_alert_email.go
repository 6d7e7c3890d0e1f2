package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"github.com/talentbridge/go-talent-match/internal/mail"
)

const TaskSendMatchAlertEmail = "task:send_match_alert_email"

type PayloadSendMatchAlertEmail struct {
	Email       string  `json:"email"`
	SearchName  string  `json:"search_name"`
	NewMatchIDs []int32 `json:"new_match_ids"`
	MatchCount  int     `json:"match_count"`
}

// DistributeTaskSendMatchAlertEmail distributes the task of sending an
// email about new matching candidates.
func (distributor *RedisTaskDistributor) DistributeTaskSendMatchAlertEmail(
	ctx context.Context,
	payload *PayloadSendMatchAlertEmail,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskSendMatchAlertEmail, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}
	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("enqueued task")

	return nil
}

// ProcessTaskSendMatchAlertEmail processes the task of sending an email
// about new matching candidates.
func (processor *RedisTaskProcessor) ProcessTaskSendMatchAlertEmail(ctx context.Context, task *asynq.Task) error {
	var payload PayloadSendMatchAlertEmail
	err := json.Unmarshal(task.Payload(), &payload)
	if err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	subject, content := mail.ComposeMatchAlert(payload.SearchName, payload.NewMatchIDs, payload.MatchCount)

	err = processor.emailSender.SendEmail(mail.Data{
		To:      []string{payload.Email},
		Subject: subject,
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("email", payload.Email).Msg("processed task")

	return nil
}
