package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/middleware"
)

const (
	StatusOk           = "ok"
	StatusDown         = "down"
	healthStoreTimeout = 2 * time.Second
	healthTimeLayout   = "2006-01-02 15:04:05"
)

// Pinger is the part of a store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
	Name() string
}

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Backend string `json:"backend"`
	Store   string `json:"store"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	ctx := c.Request.Context()
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkStore(ctx) {
		statusCode = http.StatusServiceUnavailable
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(healthTimeLayout),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()

	storeStatus := StatusDown
	if h.checkStore(ctx) {
		storeStatus = StatusOk
	}

	backend := ""
	if h.store != nil {
		backend = h.store.Name()
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(healthTimeLayout),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Backend: backend,
			Store:   storeStatus,
		},
	})
}

func (h *HealthHandler) checkStore(ctx context.Context) bool {
	if h.store == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthStoreTimeout)
	defer cancel()
	return h.store.Ping(timeoutCtx) == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
