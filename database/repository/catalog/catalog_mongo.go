package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"storefront/config"
	"storefront/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository defines read access to the catalog collections and the
// admin write path for service offerings. Catalog documents are schemaless
// passthroughs; no decoding beyond bson.M happens here.
type CatalogRepository interface {
	ListCollection(ctx context.Context, collection string) ([]bson.M, error)
	InsertService(ctx context.Context, svc *models.ServiceOffering) error
}

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	db *mongo.Database
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo(client *mongo.Client) CatalogRepository {
	return &MongoCatalogRepo{db: client.Database(config.AppConfig.MongoDB)}
}

// ListCollection retrieves all documents of the given catalog collection.
func (r *MongoCatalogRepo) ListCollection(ctx context.Context, collection string) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve %s documents: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", collection, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// InsertService persists a new service offering, image bytes included.
func (r *MongoCatalogRepo) InsertService(ctx context.Context, svc *models.ServiceOffering) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	svc.CreatedAt = time.Now()
	if _, err := r.db.Collection("Service").InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}
