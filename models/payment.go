package models

import "time"

// Payment is a write-only ledger entry recording a completed client-side
// payment. It is never mutated or read back by the booking workflow.
type Payment struct {
	ID            string                 `bson:"id" json:"id"`
	BookingID     string                 `bson:"bookingId" json:"bookingId"`
	TransactionID string                 `bson:"transactionId" json:"transactionId"`
	Amount        float64                `bson:"amount,omitempty" json:"amount,omitempty"`
	Method        string                 `bson:"method,omitempty" json:"method,omitempty"`
	CreatedAt     time.Time              `bson:"created_at" json:"created_at"`
	Extra         map[string]interface{} `bson:",inline" json:"extra,omitempty"`
}

// ReceiptPayload is the queue payload for the receipt worker.
type ReceiptPayload struct {
	BookingID     string `json:"bookingId"`
	PaymentID     string `json:"paymentId"`
	TransactionID string `json:"transactionId"`
	Email         string `json:"email"`
}
