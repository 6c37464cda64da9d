package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"storefront/config"
	"storefront/models"
	"storefront/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReceiptWorker runs the async receipt worker in background.
func InitReceiptWorker(logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReceipt, handleReceiptTask(logger))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReceiptWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReceiptWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReceiptWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReceiptTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReceiptPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid receipt payload", zap.Error(err))
			return err
		}

		// Receipt delivery is a log line until a mail provider is wired in.
		logger.Info("booking receipt",
			zap.String("bookingId", p.BookingID),
			zap.String("paymentId", p.PaymentID),
			zap.String("transactionId", p.TransactionID),
			zap.String("email", p.Email),
		)
		return nil
	}
}
