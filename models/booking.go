package models

import "time"

// Booking represents a customer's reservation for a named service at a
// quoted price, pending payment.
type Booking struct {
	ID            string                 `bson:"id" json:"id"`                                           // Unique booking identifier (UUID)
	Email         string                 `bson:"email" json:"email"`                                     // Customer email
	ServiceName   string                 `bson:"serviceName" json:"serviceName"`                         // Booked service name
	Price         float64                `bson:"price" json:"price"`                                     // Quoted price in major currency units
	Paid          bool                   `bson:"paid" json:"paid"`                                       // Set true by payment reconciliation
	TransactionID string                 `bson:"transactionId,omitempty" json:"transactionId,omitempty"` // Attached on reconciliation
	CreatedAt     time.Time              `bson:"created_at" json:"created_at"`
	Extra         map[string]interface{} `bson:",inline" json:"extra,omitempty"` // Additional descriptive fields, persisted verbatim
}
