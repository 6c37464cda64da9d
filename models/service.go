package models

import "time"

// ServiceOffering is an admin-published service with its display image
// stored as raw binary in the document store.
type ServiceOffering struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"des" json:"des"`
	Image       []byte    `bson:"img" json:"img,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
