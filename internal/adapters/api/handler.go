package api

import (
	"net/http"

	"loginsvc/internal/adapters/api/middleware"
	appauth "loginsvc/internal/application/auth"
	"loginsvc/internal/application/token"
	"loginsvc/internal/config"
	"loginsvc/internal/domain/auth"
	"loginsvc/internal/infrastructure/oauth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"     // swagger embed files
	ginSwagger "github.com/swaggo/gin-swagger" // gin-swagger middleware

	_ "loginsvc/docs" // swagger docs
)

// Handler handles HTTP requests for the login API
type Handler struct {
	identity  *appauth.Service
	tokens    *token.Service
	providers oauth.Registry
	cfg       *config.Config
}

// NewHandler creates a new API handler
func NewHandler(identity *appauth.Service, tokens *token.Service, providers oauth.Registry, cfg *config.Config) *Handler {
	return &Handler{
		identity:  identity,
		tokens:    tokens,
		providers: providers,
		cfg:       cfg,
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/refresh", h.Refresh)
		authGroup.GET("/me", middleware.RequireAccessToken(h.tokens), h.Me)
		authGroup.GET("/:provider", h.Login)
		authGroup.GET("/:provider/callback", h.Callback)
	}

	r.GET("/health", h.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// lookupProvider resolves the :provider path segment to a registered adapter
func (h *Handler) lookupProvider(c *gin.Context) (oauth.Provider, bool) {
	tag, ok := auth.ParseProvider(c.Param("provider"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown provider"})
		return nil, false
	}
	provider, ok := h.providers.Lookup(tag)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown provider"})
		return nil, false
	}
	return provider, true
}

// Health godoc
//
//	@Summary		Health check
//	@Description	Check if the API is healthy
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
