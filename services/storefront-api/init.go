package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	"github.com/storelane/store-backend/pkg/db"
	"github.com/storelane/store-backend/pkg/messaging"
	"github.com/storelane/store-backend/pkg/utils"

	catalogDB "github.com/storelane/store-backend/pkg/db/catalog"
	orderDB "github.com/storelane/store-backend/pkg/db/order"
	reviewDB "github.com/storelane/store-backend/pkg/db/review"
	settingsDB "github.com/storelane/store-backend/pkg/db/settings"
	smtpclient "github.com/storelane/store-backend/pkg/smtp-client"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_STORE_DB_USERNAME = "STORE_DB_USERNAME"
	ENV_STORE_DB_PASSWORD = "STORE_DB_PASSWORD"

	ENV_SMTP_USERNAME = "SMTP_USERNAME"
	ENV_SMTP_PASSWORD = "SMTP_PASSWORD"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`
	} `json:"gin_config" yaml:"gin_config"`

	// DB configs
	DBConfigs struct {
		StoreDB db.DBConfigYaml `json:"store_db" yaml:"store_db"`
	} `json:"db_configs" yaml:"db_configs"`

	SmtpServerConfig smtpclient.SmtpServerList `json:"smtp_server_config" yaml:"smtp_server_config"`

	// product images uploaded through the admin API are served from here
	FilestorePath string `json:"filestore_path" yaml:"filestore_path"`
}

var conf config

var (
	catalogDBService  *catalogDB.CatalogDBService
	orderDBService    *orderDB.OrderDBService
	reviewDBService   *reviewDB.ReviewDBService
	settingsDBService *settingsDB.SettingsDBService
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(conf.Logging)

	// Override secrets from environment variables
	secretsOverride()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	initDBs()

	initMessaging()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_STORE_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.StoreDB.Username = dbUsername
	}
	if dbPassword := os.Getenv(ENV_STORE_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.StoreDB.Password = dbPassword
	}

	for i := range conf.SmtpServerConfig.Servers {
		server := &conf.SmtpServerConfig.Servers[i]
		if smtpUsername := os.Getenv(ENV_SMTP_USERNAME); smtpUsername != "" {
			server.SetUsername(smtpUsername)
		}
		if smtpPassword := os.Getenv(ENV_SMTP_PASSWORD); smtpPassword != "" {
			server.SetPassword(smtpPassword)
		}
	}
}

func initDBs() {
	var err error
	storeDBConfig := db.DBConfigFromYamlObj("store DB", conf.DBConfigs.StoreDB)

	catalogDBService, err = catalogDB.NewCatalogDBService(storeDBConfig)
	if err != nil {
		slog.Error("Error connecting to Catalog DB", slog.String("error", err.Error()))
		panic(err)
	}

	orderDBService, err = orderDB.NewOrderDBService(storeDBConfig)
	if err != nil {
		slog.Error("Error connecting to Order DB", slog.String("error", err.Error()))
		panic(err)
	}

	reviewDBService, err = reviewDB.NewReviewDBService(storeDBConfig)
	if err != nil {
		slog.Error("Error connecting to Review DB", slog.String("error", err.Error()))
		panic(err)
	}

	settingsDBService, err = settingsDB.NewSettingsDBService(storeDBConfig)
	if err != nil {
		slog.Error("Error connecting to Settings DB", slog.String("error", err.Error()))
		panic(err)
	}
}

func initMessaging() {
	if len(conf.SmtpServerConfig.Servers) < 1 {
		slog.Warn("no SMTP servers configured, order confirmation emails are disabled")
		return
	}

	smtpClients, err := smtpclient.NewSmtpClients(conf.SmtpServerConfig)
	if err != nil {
		slog.Error("Error setting up SMTP clients", slog.String("error", err.Error()))
		panic(err)
	}
	messaging.InitMessageSendingVariables(smtpClients)
}
