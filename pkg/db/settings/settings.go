package settings

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
	COLLECTION_NAME_SETTINGS = "settings"

	// there is exactly one settings document per store
	SETTINGS_DOC_ID = "store"
)

type StoreSettings struct {
	ID        string `bson:"_id" json:"-"`
	StoreName string `bson:"storeName" json:"storeName"`
	// ISO 4217 code, e.g. "EUR"
	Currency     string `bson:"currency" json:"currency"`
	ContactEmail string `bson:"contactEmail" json:"contactEmail"`
	// displayed tax rate, prices are stored tax inclusive
	TaxRatePercent float64 `bson:"taxRatePercent" json:"taxRatePercent"`
	// flat shipping fee in minor units, added to every order
	ShippingFee int64 `bson:"shippingFee" json:"shippingFee"`
	// orders are rejected while the store is in maintenance mode
	MaintenanceMode bool `bson:"maintenanceMode" json:"maintenanceMode"`

	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type SettingsDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
}

func NewSettingsDBService(configs db.DBConfig) (*SettingsDBService, error) {
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

	return &SettingsDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
	}, nil
}

func (dbService *SettingsDBService) getDBName() string {
	return dbService.DBNamePrefix + "store"
}

func (dbService *SettingsDBService) collectionSettings() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_SETTINGS)
}

func (dbService *SettingsDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

// GetStoreSettings returns the stored settings, or sensible defaults when
// nothing has been saved yet.
func (dbService *SettingsDBService) GetStoreSettings() (*StoreSettings, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var settings StoreSettings
	err := dbService.collectionSettings().FindOne(ctx, bson.M{"_id": SETTINGS_DOC_ID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		slog.Debug("No store settings saved yet, returning defaults")
		return &StoreSettings{
			ID:        SETTINGS_DOC_ID,
			StoreName: "Store",
			Currency:  "EUR",
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (dbService *SettingsDBService) SaveStoreSettings(settings *StoreSettings) (*StoreSettings, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	settings.ID = SETTINGS_DOC_ID
	settings.UpdatedAt = time.Now()

	_, err := dbService.collectionSettings().ReplaceOne(
		ctx,
		bson.M{"_id": SETTINGS_DOC_ID},
		settings,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return settings, nil
}
