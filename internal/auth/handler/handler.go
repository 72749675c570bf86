package handler

import (
	"sync"
)

var (
	authOnce      sync.Once
	authenticator Authenticator
)

type Authenticator interface {
	Register(request *RegisterRequest) (*SessionResponse, error)
	Login(request *LoginRequest) (*SessionResponse, error)
	Logout(token string) error
	IdentityFromToken(token string) (Identity, error)
	IsAdminEmail(email string) bool
}
