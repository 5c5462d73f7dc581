package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sevenxleaks/core/internal/middleware"
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

func (h *Handler) RegisterRoutes(r *gin.Engine, authMW gin.HandlerFunc) {
	g := r.Group("/auth")
	g.POST("/login", h.login)
	g.POST("/register", h.register)
	g.GET("/me", authMW, h.me)
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	token, u, err := h.svc.Login(dto.Email, dto.Password, c.ClientIP())
	if err != nil {
		if !errors.Is(err, errInvalidCredentials) {
			h.logger.Error("login failed", zap.Error(err))
		}
		// One generic message for every failure mode.
		response.Unauthorized(c, "Invalid email or password")
		return
	}
	response.OK(c, gin.H{"token": token, "name": u.Name})
}

// register POST /auth/register
func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Error registering user")
		return
	}

	u, err := h.svc.Register(&dto)
	if err != nil {
		if errors.Is(err, errEmailTaken) {
			response.Conflict(c, "Error registering user")
			return
		}
		h.logger.Error("registration failed", zap.Error(err))
		response.InternalError(c, "Error registering user")
		return
	}
	response.Created(c, gin.H{"name": u.Name})
}

// me GET /auth/me
func (h *Handler) me(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		h.logger.Error("user lookup failed", zap.Error(err))
		response.InternalError(c, "Error fetching user")
		return
	}
	if u == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, u)
}
