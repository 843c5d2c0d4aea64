// Package mongodb contains the concrete implementation of the persistence layer using the MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"

	"tube/config"
	"tube/internal/domain/lifecycle"
	"tube/internal/errors"
	"tube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database handle.
// The connection is verified and indexes are ensured when the app starts.
func New(params Params) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(params.Config.Mongo.URI).
		SetConnectTimeout(params.Config.Mongo.ConnectTimeout).
		SetAppName(params.Config.Env.ServiceName)

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", db.Name()))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique user indexes and the subscription lookup indexes.
// CreateMany is a no-op for indexes that already exist with the same definition.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(model.UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("username_unique")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create user indexes")
	}

	_, err = db.Collection(model.SubscriptionsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "channel", Value: 1}}, Options: options.Index().SetName("channel_idx")},
		{Keys: bson.D{{Key: "subscriber", Value: 1}}, Options: options.Index().SetName("subscriber_idx")},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create subscription indexes")
	}

	return nil
}
