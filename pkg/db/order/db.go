package order

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storelane/store-backend/pkg/db"
)

const (
	COLLECTION_NAME_ORDERS = "orders"
)

type OrderDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
}

func NewOrderDBService(configs db.DBConfig) (*OrderDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)
	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()
	if err != nil {
		return nil, err
	}

	oDBSc := &OrderDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
	}

	if configs.RunIndexCreation {
		if err := oDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for order DB", slog.String("error", err.Error()))
		}
	}

	return oDBSc, nil
}

func (dbService *OrderDBService) getDBName() string {
	return dbService.DBNamePrefix + "store"
}

func (dbService *OrderDBService) collectionOrders() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_ORDERS)
}

func (dbService *OrderDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *OrderDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for order DB")
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionOrders().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "customerEmail", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating indexes for orders", slog.String("error", err.Error()))
	}

	return nil
}
