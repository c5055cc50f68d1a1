package http

import (
	"github.com/gin-gonic/gin"

	"github.com/atelier-works/portfolio-backend/internal/projects/service"
)

// Handler bundles the dependencies for the projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

// Register attaches the project routes to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/projects", h.list)
	r.POST("/projects", h.create)
}
