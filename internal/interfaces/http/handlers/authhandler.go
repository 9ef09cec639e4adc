package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dialpool/internal/application/agent/usecases"
	"dialpool/internal/shared/logger"
	"dialpool/internal/shared/utils"
)

type AuthHandler struct {
	loginUC usecases.LoginExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  logger,
	}
}

type AgentLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AgentLoginResponse struct {
	Agent       *usecases.AgentResult `json:"agent"`
	AccessToken string                `json:"access_token"`
	TokenType   string                `json:"token_type"`
	ExpiresIn   int64                 `json:"expires_in"`
}

// AgentLogin handles POST /auth/agent/login
// @Summary Agent login
// @Description Exchange agent credentials for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body AgentLoginRequest true "Agent credentials"
// @Success 200 {object} utils.APIResponse{data=AgentLoginResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /auth/agent/login [post]
func (h *AuthHandler) AgentLogin(c *gin.Context) {
	var req AgentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnw("agent login failed", "username", req.Username, "client_ip", c.ClientIP(), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", AgentLoginResponse{
		Agent:       result.Agent,
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   result.ExpiresIn,
	})
}
