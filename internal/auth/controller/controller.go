package controller

import (
	"net/http"
	"strings"
	"sync"

	"github.com/drinkshop/backend/internal/auth/handler"
	"github.com/drinkshop/backend/pkg/api"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Me(ctx *gin.Context)
}

var (
	auth Auth
	once sync.Once
)

type AuthController struct {
	Authenticator handler.Authenticator
}

func NewController() Auth {
	if auth == nil {
		once.Do(func() {
			auth = &AuthController{
				Authenticator: handler.Instance(),
			}
		})
	}
	return auth
}

func (a *AuthController) Register(ctx *gin.Context) {
	var request handler.RegisterRequest
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		_ = ctx.Error(api.NewBadRequestError(err.Error()))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	response, err := a.Authenticator.Register(&request)
	if err != nil {
		ctx.Error(err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (a *AuthController) Login(ctx *gin.Context) {
	var request handler.LoginRequest
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		_ = ctx.Error(api.NewBadRequestError(err.Error()))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	response, err := a.Authenticator.Login(&request)
	if err != nil {
		ctx.Error(err)
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (a *AuthController) Logout(ctx *gin.Context) {
	token := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
	if err := a.Authenticator.Logout(token); err != nil {
		ctx.Error(err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (a *AuthController) Me(ctx *gin.Context) {
	identity, err := ParseIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, identity)
}

// ParseIdentity resolves the Authorization header to a signed-in user.
// Controllers for guest-capable routes should use OptionalIdentity instead.
func ParseIdentity(ctx *gin.Context) (handler.Identity, error) {
	header := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return handler.Identity{}, api.NewUnauthorizedError("missing bearer token")
	}
	token := strings.TrimPrefix(header, "Bearer ")
	identity, err := handler.Instance().IdentityFromToken(token)
	if err != nil {
		return handler.Identity{}, api.NewUnauthorizedError(err.Error())
	}
	return identity, nil
}

// OptionalIdentity returns the signed-in user when a valid token is present
// and a guest identity otherwise
func OptionalIdentity(ctx *gin.Context) handler.Identity {
	if ctx.GetHeader("Authorization") == "" {
		return handler.Identity{}
	}
	identity, err := ParseIdentity(ctx)
	if err != nil {
		return handler.Identity{}
	}
	return identity
}

// RequireAdmin resolves the caller and rejects non-admin accounts. It writes
// the error response itself; callers return on error.
func RequireAdmin(ctx *gin.Context) (handler.Identity, error) {
	identity, err := ParseIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return handler.Identity{}, err
	}
	if !identity.IsAdmin {
		err = api.NewUnauthorizedError("not authorized to process request")
		ctx.Error(err)
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return handler.Identity{}, err
	}
	return identity, nil
}
