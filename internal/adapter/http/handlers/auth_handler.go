package handlers

import (
	"net/http"

	"nirman/internal/adapter/http/dto/request"
	"nirman/internal/adapter/http/dto/response"
	"nirman/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary      Exchange credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  request.LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Envelope{data=response.LoginResponse}
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	result, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		abortWith(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromLoginResult(result)))
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.Envelope
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.usecase.Me(c.Request.Context())
	if err != nil {
		abortWith(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(user))
}
