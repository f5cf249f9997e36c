package review

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
	COLLECTION_NAME_REVIEWS = "reviews"
)

type ReviewDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
}

func NewReviewDBService(configs db.DBConfig) (*ReviewDBService, error) {
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

	rDBSc := &ReviewDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
	}

	if configs.RunIndexCreation {
		if err := rDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for review DB", slog.String("error", err.Error()))
		}
	}

	return rDBSc, nil
}

func (dbService *ReviewDBService) getDBName() string {
	return dbService.DBNamePrefix + "store"
}

func (dbService *ReviewDBService) collectionReviews() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_REVIEWS)
}

func (dbService *ReviewDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *ReviewDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for review DB")
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionReviews().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "productId", Value: 1}, {Key: "status", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating indexes for reviews", slog.String("error", err.Error()))
	}

	return nil
}
