package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atelier-works/portfolio-backend/internal/store"
)

// DiagnosticsResponse reports store connectivity for the /test endpoint.
// Introspection only; nothing here is part of the data contract.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticsHandler answers /test with the store's availability tier:
// not configured, configured but erroring, or connected.
type DiagnosticsHandler struct {
	gw      store.Gateway
	urlSet  bool
	nameSet bool
}

func NewDiagnosticsHandler(gw store.Gateway, urlSet, nameSet bool) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		gw:      gw,
		urlSet:  urlSet,
		nameSet: nameSet,
	}
}

func (h *DiagnosticsHandler) diagnostics(c *gin.Context) {
	resp := DiagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      setFlag(h.urlSet),
		DatabaseName:     setFlag(h.nameSet),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.gw != nil {
		resp.Database = "available"
		resp.ConnectionStatus = "connected"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		names, err := h.gw.Collections(ctx)
		if err != nil {
			resp.Database = "connected but error: " + truncate(err.Error(), 50)
		} else {
			resp.Database = "connected and working"
			if len(names) > 10 {
				names = names[:10]
			}
			resp.Collections = names
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DiagnosticsHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/test", h.diagnostics)
}

func setFlag(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
