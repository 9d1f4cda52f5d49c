package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solvia-inc/solvia/internal/infrastructure/auth"
	"github.com/solvia-inc/solvia/internal/shared/config"
	"github.com/solvia-inc/solvia/internal/shared/constants"
	"github.com/solvia-inc/solvia/internal/shared/logger"
	"github.com/solvia-inc/solvia/internal/shared/utils"
)

// AuthHandler serves the admin login endpoint. There is a single admin
// account configured as a username plus bcrypt hash; a successful login
// returns the bearer token the write routes require.
type AuthHandler struct {
	adminCfg   config.AdminConfig
	hasher     *auth.BcryptPasswordHasher
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthHandler(adminCfg config.AdminConfig, hasher *auth.BcryptPasswordHasher, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		adminCfg:   adminCfg,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.NewLogger(),
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if req.Username != h.adminCfg.Username {
		h.logger.Warnw("login attempt with unknown username", "username", req.Username)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := h.hasher.Verify(req.Password, h.adminCfg.PasswordHash); err != nil {
		h.logger.Warnw("login attempt with wrong password", "username", req.Username)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.jwtService.Generate(req.Username, constants.RoleAdmin)
	if err != nil {
		h.logger.Errorw("failed to generate access token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(h.jwtService.AccessExpMinutes()) * 60,
	})
}
