// Package cron runs the background queue for deferred booking work.
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"taskhive/config"
	"taskhive/services/booking"
	"taskhive/utils"
)

const TypeBookingExpire = "booking:expire"

// expirePayload is the task body for a deferred pending-booking decline.
type expirePayload struct {
	BookingID string `json:"booking_id"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// AsynqExpiryScheduler implements booking.ExpiryScheduler over an asynq
// client.
type AsynqExpiryScheduler struct {
	client *asynq.Client
}

// NewExpiryScheduler creates the asynq client for enqueueing expiry tasks.
func NewExpiryScheduler() *AsynqExpiryScheduler {
	return &AsynqExpiryScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleExpiry enqueues a booking:expire task that fires after the pending
// timeout.
func (s *AsynqExpiryScheduler) ScheduleExpiry(ctx context.Context, bookingID string, after time.Duration) error {
	payload, err := json.Marshal(expirePayload{BookingID: bookingID})
	if err != nil {
		return fmt.Errorf("failed to marshal expiry payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingExpire, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessIn(after)); err != nil {
		return fmt.Errorf("failed to enqueue expiry task: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *AsynqExpiryScheduler) Close() error {
	return s.client.Close()
}

// InitExpiryWorker runs the async worker in background.
func InitExpiryWorker(svc booking.BookingService) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingExpire, handleExpireTask(svc))

	go func() {
		logger.Info("starting booking expiry worker")
		if err := srv.Run(mux); err != nil {
			logger.Fatal("booking expiry worker failed", zap.Error(err))
		}
	}()
}

func handleExpireTask(svc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p expirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("invalid expiry payload: %w", err)
		}
		return svc.ExpirePending(ctx, p.BookingID)
	}
}
