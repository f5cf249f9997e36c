package main

import (
	"log/slog"
	"os"
	"time"

	adminuser "github.com/storelane/store-backend/pkg/admin-user"
	adminUserTypes "github.com/storelane/store-backend/pkg/admin-user/types"
)

// Creates the initial admin account if the database holds no accounts yet.
// Intended to run once during deployment.
func main() {
	slog.Info("Starting bootstrap admin job")
	start := time.Now()

	count, err := adminUserDBService.CountAdminUsers()
	if err != nil {
		slog.Error("Failed to count admin users", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if count > 0 {
		slog.Info("Admin accounts already exist, nothing to do", slog.Int64("count", count))
		return
	}

	username := os.Getenv(ENV_DEFAULT_ADMIN_USERNAME)
	password := os.Getenv(ENV_DEFAULT_ADMIN_PASSWORD)
	if username == "" || password == "" {
		slog.Error("Default admin credentials not set - configure DEFAULT_ADMIN_USERNAME and DEFAULT_ADMIN_PASSWORD env variables.")
		os.Exit(1)
	}

	account, err := adminuser.NewAccount(
		username,
		password,
		"",
		adminUserTypes.ADMIN_USER_ROLE_ADMIN,
		nil,
	)
	if err != nil {
		slog.Error("Failed to prepare admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	created, err := adminUserDBService.CreateAdminUser(account)
	if err != nil {
		slog.Error("Failed to create admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Bootstrap admin job completed",
		slog.String("accountID", created.ID.Hex()),
		slog.String("username", created.Username),
		slog.String("duration", time.Since(start).String()))
}
