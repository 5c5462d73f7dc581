package category

import (
	"github.com/gin-gonic/gin"
	"github.com/sevenxleaks/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, cacheMW gin.HandlerFunc) {
	r.GET("/categories", cacheMW, h.list)
}

// list GET /categories
func (h *Handler) list(c *gin.Context) {
	facets, err := h.svc.List()
	if err != nil {
		h.logger.Error("category listing failed", zap.Error(err))
		response.InternalError(c, "Error fetching categories")
		return
	}
	response.List(c, facets)
}
