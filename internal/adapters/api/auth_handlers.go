package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"loginsvc/internal/adapters/api/middleware"
	"loginsvc/internal/domain/auth"

	"github.com/gin-gonic/gin"
)

// Login godoc
//
//	@Summary		Start provider login
//	@Description	Redirect the browser to the identity provider's authorization page
//	@Tags			auth
//	@Param			provider	path	string	true	"Identity provider"	Enums(google, github)
//	@Success		302
//	@Failure		404	{object}	map[string]string
//	@Router			/auth/{provider} [get]
func (h *Handler) Login(c *gin.Context) {
	provider, ok := h.lookupProvider(c)
	if !ok {
		return
	}
	c.Redirect(http.StatusFound, provider.AuthCodeURL())
}

// Callback godoc
//
//	@Summary		Complete provider login
//	@Description	Exchange the provider callback for local tokens and redirect to the front-end with both attached
//	@Tags			auth
//	@Param			provider	path	string	true	"Identity provider"	Enums(google, github)
//	@Param			code		query	string	false	"Authorization code"
//	@Param			error		query	string	false	"Provider error code"
//	@Success		302
//	@Failure		401	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Failure		502	{object}	map[string]string
//	@Router			/auth/{provider}/callback [get]
func (h *Handler) Callback(c *gin.Context) {
	provider, ok := h.lookupProvider(c)
	if !ok {
		return
	}

	// Provider-level rejection: terminal, no tokens issued, no user created
	if errParam := c.Query("error"); errParam != "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": fmt.Sprintf("provider rejected the login: %s", errParam)})
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization code"})
		return
	}

	providerToken, err := provider.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to complete provider handshake"})
		return
	}

	identity, err := provider.FetchIdentity(c.Request.Context(), providerToken)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch provider profile"})
		return
	}

	user, err := h.identity.Resolve(c.Request.Context(), identity.OAuthID, identity.Name, provider.Name(), identity.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
		return
	}

	projection := user.Project()
	accessToken, err := h.tokens.IssueAccessToken(projection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue tokens"})
		return
	}
	refreshToken, err := h.tokens.IssueRefreshToken(projection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue tokens"})
		return
	}

	redirect := fmt.Sprintf("%s/auth/callback?token=%s&refreshToken=%s",
		strings.TrimSuffix(h.cfg.CallbackURL, "/"),
		url.QueryEscape(accessToken),
		url.QueryEscape(refreshToken))
	c.Redirect(http.StatusFound, redirect)
}

// RefreshRequest contains the refresh token presented for renewal
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse contains the newly minted access token
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// Refresh godoc
//
//	@Summary		Refresh the access token
//	@Description	Exchange a valid refresh token for a new access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RefreshRequest	true	"Refresh request"
//	@Success		200		{object}	RefreshResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Router			/auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token não informado."})
		return
	}

	accessToken, err := h.tokens.Refresh(req.RefreshToken)
	if errors.Is(err, auth.ErrWrongTokenType) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token não é um refresh token."})
		return
	}
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token inválido ou expirado."})
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{AccessToken: accessToken})
}

// MeResponse is the identity projection decoded from the access token
type MeResponse struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Email    *string       `json:"email"`
	OAuthID  string        `json:"oauthId"`
	Provider auth.Provider `json:"provider"`
}

// Me godoc
//
//	@Summary		Current identity
//	@Description	Decode the bearer access token and return the identity it carries
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	MeResponse
//	@Failure		401	{object}	map[string]string
//	@Router			/auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token claims"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		ID:       claims.UserID,
		Name:     claims.Name,
		Email:    claims.Email,
		OAuthID:  claims.OAuthID,
		Provider: claims.Provider,
	})
}
