package apihandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

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
	catalogDBConn  *catalogDB.CatalogDBService
	orderDBConn    *orderDB.OrderDBService
	reviewDBConn   *reviewDB.ReviewDBService
	settingsDBConn *settingsDB.SettingsDBService
}

func NewHTTPHandler(
	catalogDBConn *catalogDB.CatalogDBService,
	orderDBConn *orderDB.OrderDBService,
	reviewDBConn *reviewDB.ReviewDBService,
	settingsDBConn *settingsDB.SettingsDBService,
) *HttpEndpoints {
	return &HttpEndpoints{
		catalogDBConn:  catalogDBConn,
		orderDBConn:    orderDBConn,
		reviewDBConn:   reviewDBConn,
		settingsDBConn: settingsDBConn,
	}
}
