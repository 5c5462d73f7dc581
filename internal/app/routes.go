package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sevenxleaks/core/internal/middleware"
	"github.com/sevenxleaks/core/internal/modules/auth"
	"github.com/sevenxleaks/core/internal/modules/category"
	"github.com/sevenxleaks/core/internal/modules/content"
	"github.com/sevenxleaks/core/internal/pkg/response"
)

const searchCacheTTL = 15 * time.Second

func (a *App) registerRoutes() {
	r := a.router
	rdb := a.rc.Raw()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})

	r.Use(middleware.OptionalAuth())
	r.Use(middleware.RateLimit(rdb))

	r.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	// The response cache is mounted per route, never globally: on gated
	// search routes it must sit behind the API key check so an unkeyed
	// request can not be served a warmed envelope.
	cacheMW := middleware.HTTPCache(rdb, searchCacheTTL)

	contentSvc := content.NewService(a.db)
	contentH := content.NewHandler(contentSvc, rdb, a.logger)
	contentH.RegisterRoutes(r, middleware.APIKey(a.cfg.FrontendAPIKey), cacheMW)

	categoryH := category.NewHandler(category.NewService(a.db), a.logger)
	categoryH.RegisterRoutes(r, cacheMW)

	authH := auth.NewHandler(auth.NewService(a.db), a.logger)
	authH.RegisterRoutes(r, middleware.Auth())
}
