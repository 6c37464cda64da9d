package tasks

import (
	"encoding/json"
	"time"

	"storefront/config"
	"storefront/models"

	"github.com/hibiken/asynq"
)

const TypeSendReceipt = "receipt:send"

// NewReceiptTask builds the queue task for a booking receipt.
func NewReceiptTask(payload models.ReceiptPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendReceipt, b), nil
}

// AsynqReceiptEnqueuer dispatches receipt tasks onto the Redis-backed queue.
type AsynqReceiptEnqueuer struct {
	client *asynq.Client
}

// NewAsynqReceiptEnqueuer creates the enqueuer from the app Redis config.
func NewAsynqReceiptEnqueuer() *AsynqReceiptEnqueuer {
	return &AsynqReceiptEnqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// EnqueueReceipt queues the receipt for background delivery with a short
// retry budget.
func (e *AsynqReceiptEnqueuer) EnqueueReceipt(payload models.ReceiptPayload) error {
	task, err := NewReceiptTask(payload)
	if err != nil {
		return err
	}
	_, err = e.client.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(30*time.Second))
	return err
}

// Close releases the underlying queue client.
func (e *AsynqReceiptEnqueuer) Close() error {
	return e.client.Close()
}
