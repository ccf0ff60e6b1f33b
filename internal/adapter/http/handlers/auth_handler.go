package handlers

import (
	"net/http"

	request "fieldtech/internal/adapter/http/dto/request"
	response "fieldtech/internal/adapter/http/dto/response"
	"fieldtech/internal/usecase"
	"fieldtech/internal/usecase/interfaces"
	"fieldtech/pkg"

	"github.com/gin-gonic/gin"
)

var errNoSession = pkg.NewDomainErrorSimple("NO_SESSION", "Not signed in", http.StatusUnauthorized)

// AuthHandler signs the technician in and out of the remote gateway.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary      Sign in to the gateway
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LoginRequest  true  "Credentials"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	s, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, sessionResponse(s))
}

// Logout godoc
// @Summary      Sign out
// @Tags         auth
// @Success      204
// @Failure      502  {object}  pkg.HTTPError
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context()); err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Session godoc
// @Summary      Signed-in technician
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	s, ok := h.usecase.Current()
	if !ok {
		writeError(c, errNoSession)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(s))
}

// sessionResponse leaves the token out; it stays with the gateway client.
func sessionResponse(s interfaces.Session) response.SessionResponse {
	return response.SessionResponse{User: sessionUser(s.User)}
}

func sessionUser(u interfaces.SessionUser) response.SessionUserDTO {
	return response.SessionUserDTO{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
