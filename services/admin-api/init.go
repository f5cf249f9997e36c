package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	adminuser "github.com/storelane/store-backend/pkg/admin-user"
	"github.com/storelane/store-backend/pkg/admin-user/pwhash"
	adminUserTypes "github.com/storelane/store-backend/pkg/admin-user/types"
	"github.com/storelane/store-backend/pkg/apihelpers"
	"github.com/storelane/store-backend/pkg/db"
	jwthandling "github.com/storelane/store-backend/pkg/jwt-handling"
	"github.com/storelane/store-backend/pkg/utils"

	adminUserDB "github.com/storelane/store-backend/pkg/db/admin-user"
	catalogDB "github.com/storelane/store-backend/pkg/db/catalog"
	orderDB "github.com/storelane/store-backend/pkg/db/order"
	reviewDB "github.com/storelane/store-backend/pkg/db/review"
	settingsDB "github.com/storelane/store-backend/pkg/db/settings"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_ADMIN_USER_JWT_SIGN_KEY = "ADMIN_USER_JWT_SIGN_KEY"

	ENV_STORE_DB_USERNAME = "STORE_DB_USERNAME"
	ENV_STORE_DB_PASSWORD = "STORE_DB_PASSWORD"

	ENV_ADMIN_USER_DB_USERNAME = "ADMIN_USER_DB_USERNAME"
	ENV_ADMIN_USER_DB_PASSWORD = "ADMIN_USER_DB_PASSWORD"

	// Credentials for the default admin account created on first start
	ENV_DEFAULT_ADMIN_USERNAME = "DEFAULT_ADMIN_USERNAME"
	ENV_DEFAULT_ADMIN_PASSWORD = "DEFAULT_ADMIN_PASSWORD"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	// Admin session configs
	AdminAuthConfig struct {
		JWTSignKey        string `json:"jwt_sign_key" yaml:"jwt_sign_key"`
		SessionExpiresIn  string `json:"session_expires_in" yaml:"session_expires_in"`
		Argon2Memory      uint32 `json:"argon2_memory" yaml:"argon2_memory"`
		Argon2Iterations  uint32 `json:"argon2_iterations" yaml:"argon2_iterations"`
		Argon2Parallelism uint8  `json:"argon2_parallelism" yaml:"argon2_parallelism"`
	} `json:"admin_auth_config" yaml:"admin_auth_config"`

	// DB configs
	DBConfigs struct {
		StoreDB     db.DBConfigYaml `json:"store_db" yaml:"store_db"`
		AdminUserDB db.DBConfigYaml `json:"admin_user_db" yaml:"admin_user_db"`
	} `json:"db_configs" yaml:"db_configs"`

	FilestorePath string `json:"filestore_path" yaml:"filestore_path"`
}

var conf config

var (
	adminUserDBService *adminUserDB.AdminUserDBService
	catalogDBService   *catalogDB.CatalogDBService
	orderDBService     *orderDB.OrderDBService
	reviewDBService    *reviewDB.ReviewDBService
	settingsDBService  *settingsDB.SettingsDBService

	guard *adminuser.Guard
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

	checkRequiredConfigs()

	initArgonParamsFromConfig()

	initDBs()

	initGuard()

	ensureDefaultAdmin()

	checkFilestorePath()
}

func secretsOverride() {
	if signKey := os.Getenv(ENV_ADMIN_USER_JWT_SIGN_KEY); signKey != "" {
		conf.AdminAuthConfig.JWTSignKey = signKey
	}

	if dbUsername := os.Getenv(ENV_STORE_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.StoreDB.Username = dbUsername
	}
	if dbPassword := os.Getenv(ENV_STORE_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.StoreDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_ADMIN_USER_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.AdminUserDB.Username = dbUsername
	}
	if dbPassword := os.Getenv(ENV_ADMIN_USER_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.AdminUserDB.Password = dbPassword
	}
}

func checkRequiredConfigs() {
	if conf.AdminAuthConfig.JWTSignKey == "" {
		slog.Error("Admin user JWT sign key not set - configure ADMIN_USER_JWT_SIGN_KEY env variable.")
		panic("Admin user JWT sign key not set")
	}
}

func initArgonParamsFromConfig() {
	if conf.AdminAuthConfig.Argon2Memory > 0 &&
		conf.AdminAuthConfig.Argon2Iterations > 0 &&
		conf.AdminAuthConfig.Argon2Parallelism > 0 {
		pwhash.InitArgonParams(
			conf.AdminAuthConfig.Argon2Memory,
			conf.AdminAuthConfig.Argon2Iterations,
			conf.AdminAuthConfig.Argon2Parallelism,
		)
	}
}

func initDBs() {
	var err error
	adminUserDBService, err = adminUserDB.NewAdminUserDBService(db.DBConfigFromYamlObj("admin user DB", conf.DBConfigs.AdminUserDB))
	if err != nil {
		slog.Error("Error connecting to Admin User DB", slog.String("error", err.Error()))
		panic(err)
	}

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

func initGuard() {
	sessionTTL := adminuser.DEFAULT_SESSION_TTL
	if conf.AdminAuthConfig.SessionExpiresIn != "" {
		d, err := utils.ParseDurationString(conf.AdminAuthConfig.SessionExpiresIn)
		if err != nil {
			slog.Error("invalid session expiration", slog.String("error", err.Error()))
			panic(err)
		}
		sessionTTL = d
	}

	guard = adminuser.NewGuard(
		adminUserDBService,
		&jwthandling.AdminSessionCodec{SignKey: conf.AdminAuthConfig.JWTSignKey},
		sessionTTL,
	)
}

// ensureDefaultAdmin creates the default admin account when the database
// holds no accounts at all, so a fresh deployment is never left without a way
// to log in. The bootstrap-admin job covers the same path for setups that
// prefer an explicit provisioning step.
func ensureDefaultAdmin() {
	count, err := adminUserDBService.CountAdminUsers()
	if err != nil {
		slog.Error("Failed to count admin users", slog.String("error", err.Error()))
		panic(err)
	}
	if count > 0 {
		return
	}

	username := os.Getenv(ENV_DEFAULT_ADMIN_USERNAME)
	password := os.Getenv(ENV_DEFAULT_ADMIN_PASSWORD)
	if username == "" || password == "" {
		slog.Warn("No admin accounts exist and no default admin credentials configured")
		return
	}

	account, err := adminuser.NewAccount(
		username,
		password,
		"",
		adminUserTypes.ADMIN_USER_ROLE_ADMIN,
		nil,
	)
	if err != nil {
		slog.Error("Failed to prepare default admin account", slog.String("error", err.Error()))
		panic(err)
	}

	created, err := adminUserDBService.CreateAdminUser(account)
	if err != nil {
		slog.Error("Failed to create default admin account", slog.String("error", err.Error()))
		panic(err)
	}
	slog.Info("Default admin account created", slog.String("accountID", created.ID.Hex()), slog.String("username", created.Username))
}

func checkFilestorePath() {
	// To store uploaded product images
	if conf.FilestorePath == "" {
		slog.Error("Filestore path not set")
		panic("Filestore path not set")
	}

	if _, err := os.Stat(conf.FilestorePath); os.IsNotExist(err) {
		slog.Error("Filestore path does not exist", slog.String("path", conf.FilestorePath))
		panic("Filestore path does not exist")
	}
}
