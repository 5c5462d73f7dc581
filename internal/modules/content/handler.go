package content

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sevenxleaks/core/catalog"
	"github.com/sevenxleaks/core/internal/middleware"
	"github.com/sevenxleaks/core/internal/models"
	"github.com/sevenxleaks/core/internal/pkg/pagination"
	"github.com/sevenxleaks/core/internal/pkg/response"
	"go.uber.org/zap"
)

// Tiers with a search endpoint; banned and unknown items are reachable only
// by slug.
var searchableTiers = map[string]bool{
	models.TierFree: true,
	models.TierVIP:  true,
}

// Handler handles content HTTP requests.
type Handler struct {
	svc    *Service
	rdb    *redis.Client
	logger *zap.Logger
}

func NewHandler(svc *Service, rdb *redis.Client, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, rdb: rdb, logger: logger}
}

// RegisterRoutes mounts one route group per tier: /freecontent, /vipcontent,
// /bannedcontent, /unknowncontent. The response cache runs after the API key
// check, so a warmed search entry is never served to an unkeyed request.
func (h *Handler) RegisterRoutes(r *gin.Engine, apiKeyMW, cacheMW gin.HandlerFunc) {
	for _, tier := range []string{models.TierFree, models.TierVIP, models.TierBanned, models.TierUnknown} {
		g := r.Group("/" + tier + "content")

		if searchableTiers[tier] {
			g.GET("/search", apiKeyMW, cacheMW, h.search(tier))
		}
		g.GET("/:slug", cacheMW, h.detail(tier))

		admin := g.Group("", middleware.AdminOnly())
		admin.POST("", h.create(tier))
		admin.PUT("/:id", h.update(tier))
		admin.DELETE("/:id", h.delete(tier))
	}
}

// search GET /{tier}content/search
// The result envelope is serialized through the shared scramble codec; the
// body is {"data": "<encoded>"}.
func (h *Handler) search(tier string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sq SearchQuery
		if err := c.ShouldBindQuery(&sq); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		pq := pagination.FromContext(c)

		rows, totalPages, err := h.svc.Search(tier, sq, pq)
		if err != nil {
			h.logger.Error("content search failed", zap.String("tier", tier), zap.Error(err))
			response.InternalError(c, "Error fetching content")
			return
		}

		encoded, err := catalog.Encode(catalog.Envelope{
			Data:       toItems(rows),
			TotalPages: totalPages,
		})
		if err != nil {
			h.logger.Error("envelope encode failed", zap.Error(err))
			response.InternalError(c, "Error fetching content")
			return
		}
		response.OK(c, gin.H{"data": encoded})
	}
}

// detail GET /{tier}content/:slug
func (h *Handler) detail(tier string) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, err := h.svc.GetBySlug(tier, c.Param("slug"))
		if err != nil {
			h.logger.Error("content detail failed", zap.String("tier", tier), zap.Error(err))
			response.InternalError(c, "Error fetching content")
			return
		}
		if row == nil {
			response.NotFound(c, "Content not found")
			return
		}
		response.OK(c, toItem(row))
	}
}

// create POST /{tier}content (admin)
func (h *Handler) create(tier string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto CreateContentDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		row, err := h.svc.Create(tier, &dto)
		if err != nil {
			if errors.Is(err, errSlugTaken) {
				response.Conflict(c, err.Error())
				return
			}
			response.BadRequest(c, err.Error())
			return
		}
		h.purgeCache(c)
		response.Created(c, toItem(row))
	}
}

// update PUT /{tier}content/:id (admin)
func (h *Handler) update(tier string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto UpdateContentDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		row, err := h.svc.Update(tier, c.Param("id"), &dto)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		if row == nil {
			response.NotFound(c, "Content not found")
			return
		}
		h.purgeCache(c)
		response.OK(c, toItem(row))
	}
}

// delete DELETE /{tier}content/:id (admin)
func (h *Handler) delete(tier string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.svc.Delete(tier, c.Param("id")); err != nil {
			h.logger.Error("content delete failed", zap.Error(err))
			response.InternalError(c, "Error deleting content")
			return
		}
		h.purgeCache(c)
		response.NoContent(c)
	}
}

func (h *Handler) purgeCache(c *gin.Context) {
	if _, err := middleware.PurgeHTTPCache(c.Request.Context(), h.rdb); err != nil {
		h.logger.Warn("cache purge failed", zap.Error(err))
	}
}
