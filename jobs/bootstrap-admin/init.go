package main

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/storelane/store-backend/pkg/db"
	"github.com/storelane/store-backend/pkg/utils"

	adminUserDB "github.com/storelane/store-backend/pkg/db/admin-user"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_ADMIN_USER_DB_USERNAME = "ADMIN_USER_DB_USERNAME"
	ENV_ADMIN_USER_DB_PASSWORD = "ADMIN_USER_DB_PASSWORD"

	// Credentials for the account to create
	ENV_DEFAULT_ADMIN_USERNAME = "DEFAULT_ADMIN_USERNAME"
	ENV_DEFAULT_ADMIN_PASSWORD = "DEFAULT_ADMIN_PASSWORD"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		AdminUserDB db.DBConfigYaml `json:"admin_user_db" yaml:"admin_user_db"`
	} `json:"db_configs" yaml:"db_configs"`
}

var conf config

var (
	adminUserDBService *adminUserDB.AdminUserDBService
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

	initDBs()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_ADMIN_USER_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.AdminUserDB.Username = dbUsername
	}
	if dbPassword := os.Getenv(ENV_ADMIN_USER_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.AdminUserDB.Password = dbPassword
	}
}

func initDBs() {
	var err error
	adminUserDBService, err = adminUserDB.NewAdminUserDBService(db.DBConfigFromYamlObj("admin user DB", conf.DBConfigs.AdminUserDB))
	if err != nil {
		slog.Error("Error connecting to Admin User DB", slog.String("error", err.Error()))
		panic(err)
	}
}
