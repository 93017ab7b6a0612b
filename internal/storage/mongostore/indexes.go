package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"library-api/internal/storage"
)

// EnsureIndexes creates a unique index for every unique field of every spec.
// Index names follow MongoDB's default "<field>_1" so duplicate-key errors can
// be traced back to the field. The partial filter keeps documents without a
// string value out of the index.
func EnsureIndexes(ctx context.Context, db *mongo.Database, specs ...storage.CollectionSpec) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, spec := range specs {
		spec := spec
		models := indexModels(spec)
		if len(models) == 0 {
			continue
		}
		coll := db.Collection(spec.Name)
		g.Go(func() error {
			if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
				return fmt.Errorf("failed to create indexes on %s: %w", spec.Name, err)
			}
			return nil
		})
	}

	return g.Wait()
}

func indexModels(spec storage.CollectionSpec) []mongo.IndexModel {
	models := make([]mongo.IndexModel, 0, len(spec.UniqueFields))
	for _, field := range spec.UniqueFields {
		models = append(models, mongo.IndexModel{
			Keys: bson.D{{Key: field, Value: 1}},
			Options: options.Index().
				SetName(field + "_1").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{field: bson.M{"$type": "string"}}),
		})
	}
	return models
}
