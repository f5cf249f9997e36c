package apihandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	adminuser "github.com/storelane/store-backend/pkg/admin-user"
	adminUserDB "github.com/storelane/store-backend/pkg/db/admin-user"
	catalogDB "github.com/storelane/store-backend/pkg/db/catalog"
	orderDB "github.com/storelane/store-backend/pkg/db/order"
	reviewDB "github.com/storelane/store-backend/pkg/db/review"
	settingsDB "github.com/storelane/store-backend/pkg/db/settings"
)

func HealthCheckHandle(c *gin.Context) {
	serviceInfos := make(map[string]interface{})
	infos, err := os.ReadFile("serviceInfos.json")
	if err != nil {
		slog.Debug("Error reading serviceInfos.json", slog.String("error", err.Error()))
	} else {
		err = json.Unmarshal(infos, &serviceInfos)
		if err != nil {
			slog.Debug("Error unmarshalling serviceInfos.json", slog.String("error", err.Error()))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"serviceInfos": serviceInfos,
	})
}

type HttpEndpoints struct {
	guard          *adminuser.Guard
	adminUserDB    *adminUserDB.AdminUserDBService
	catalogDBConn  *catalogDB.CatalogDBService
	orderDBConn    *orderDB.OrderDBService
	reviewDBConn   *reviewDB.ReviewDBService
	settingsDBConn *settingsDB.SettingsDBService
	filestorePath  string
}

func NewHTTPHandler(
	guard *adminuser.Guard,
	adminUserDBConn *adminUserDB.AdminUserDBService,
	catalogDBConn *catalogDB.CatalogDBService,
	orderDBConn *orderDB.OrderDBService,
	reviewDBConn *reviewDB.ReviewDBService,
	settingsDBConn *settingsDB.SettingsDBService,
	filestorePath string,
) *HttpEndpoints {
	return &HttpEndpoints{
		guard:          guard,
		adminUserDB:    adminUserDBConn,
		catalogDBConn:  catalogDBConn,
		orderDBConn:    orderDBConn,
		reviewDBConn:   reviewDBConn,
		settingsDBConn: settingsDBConn,
		filestorePath:  filestorePath,
	}
}
