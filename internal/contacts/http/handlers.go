package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelier-works/portfolio-backend/internal/contacts/domain"
	"github.com/atelier-works/portfolio-backend/internal/contacts/service"
	"github.com/atelier-works/portfolio-backend/internal/store"
)

// Handler bundles the dependencies for the contact HTTP endpoint.
type Handler struct {
	svc *service.ContactService
}

func New(svc *service.ContactService) *Handler {
	return &Handler{svc: svc}
}

// Register attaches the contact route. Middleware (the submission rate
// limiter) is supplied by the caller.
func (h *Handler) Register(r gin.IRouter, middleware ...gin.HandlerFunc) {
	handlers := append(middleware, h.submit)
	r.POST("/contact", handlers...)
}

func (h *Handler) submit(c *gin.Context) {
	var in domain.ContactIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	contact, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit message"})
		return
	}

	c.JSON(http.StatusCreated, contact)
}
