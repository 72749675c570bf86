package handler

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/drinkshop/backend/internal/configs"
	"github.com/drinkshop/backend/internal/repositories/sql/session"
	"github.com/drinkshop/backend/internal/repositories/sql/user"
	"github.com/drinkshop/backend/pkg/infra"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	defaultExpiry     = 24 * time.Hour
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type AuthHandler struct {
	userRepo    user.Repository
	sessionRepo session.Repository
	jwtKey      []byte
	expiry      time.Duration
	adminEmails map[string]bool
}

func InitAuthHandler(config configs.Configs) Authenticator {
	if authenticator == nil {
		authOnce.Do(func() {
			userRepo, err := user.NewRepository(infra.SQL)
			if err != nil {
				log.Error().Msgf("Error in creating user repository")
			}
			sessionRepo, err := session.NewRepository(infra.SQL)
			if err != nil {
				log.Error().Msgf("Error in creating session repository")
			}
			authenticator = NewAuthHandler(userRepo, sessionRepo, config)
		})
	}
	return authenticator
}

// Instance returns the initialized authenticator
func Instance() Authenticator {
	if authenticator == nil {
		log.Fatal().Msg("Authenticator not initialized")
	}
	return authenticator
}

func NewAuthHandler(userRepo user.Repository, sessionRepo session.Repository, config configs.Configs) *AuthHandler {
	expiry := defaultExpiry
	if config.JwtExpiryHours > 0 {
		expiry = time.Duration(config.JwtExpiryHours) * time.Hour
	}
	adminEmails := make(map[string]bool)
	for _, email := range strings.Split(config.AdminEmails, ",") {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			adminEmails[email] = true
		}
	}
	return &AuthHandler{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtKey:      []byte(config.JwtSecret),
		expiry:      expiry,
		adminEmails: adminEmails,
	}
}

func (a *AuthHandler) validateRegistration(request *RegisterRequest) error {
	if !emailPattern.MatchString(request.Email) {
		return fmt.Errorf("invalid email address")
	}
	if len(request.Password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if strings.TrimSpace(request.DisplayName) == "" {
		return fmt.Errorf("display name is required")
	}
	return nil
}

// Register creates a new account and signs the user in
func (a *AuthHandler) Register(request *RegisterRequest) (*SessionResponse, error) {
	if err := a.validateRegistration(request); err != nil {
		log.Error().Msgf("Registration validation failed: %v", err)
		return nil, err
	}

	if _, err := a.userRepo.GetUserByEmail(request.Email); err == nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Msgf("Failed to hash password: %v", err)
		return nil, err
	}

	record := user.User{
		UID:          uuid.NewString(),
		Email:        strings.ToLower(request.Email),
		DisplayName:  strings.TrimSpace(request.DisplayName),
		PasswordHash: string(hashedPassword),
	}
	if _, err = a.userRepo.CreateUser(&record); err != nil {
		log.Error().Msgf("Failed to register user: %v", err)
		return nil, err
	}

	log.Info().Msgf("User %s registered successfully", record.Email)
	return a.openSession(&record)
}

// Login verifies credentials and issues a session token
func (a *AuthHandler) Login(request *LoginRequest) (*SessionResponse, error) {
	record, err := a.userRepo.GetUserByEmail(strings.ToLower(request.Email))
	if err != nil {
		log.Error().Msgf("User not found with email: %s", request.Email)
		return nil, fmt.Errorf("invalid email or password")
	}

	err = bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(request.Password))
	if err != nil {
		log.Error().Msg("Password mismatch")
		return nil, fmt.Errorf("invalid email or password")
	}

	log.Info().Msgf("User %s logged in successfully", record.Email)
	return a.openSession(record)
}

func (a *AuthHandler) openSession(record *user.User) (*SessionResponse, error) {
	expirationTime := time.Now().Add(a.expiry)
	claims := &Claims{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.jwtKey)
	if err != nil {
		log.Error().Msgf("Failed to generate JWT token: %v", err)
		return nil, fmt.Errorf("failed to generate token")
	}
	if err := a.sessionRepo.Save(record.UID, tokenString, expirationTime); err != nil {
		log.Error().Msgf("Failed to save session: %v", err)
		return nil, fmt.Errorf("failed to save session")
	}
	return &SessionResponse{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		IsAdmin:     a.IsAdminEmail(record.Email),
		Token:       tokenString,
	}, nil
}

func (a *AuthHandler) Logout(token string) error {
	if err := a.sessionRepo.Revoke(token); err != nil {
		log.Error().Msgf("Failed to revoke session: %v", err)
		return err
	}
	return nil
}

// IdentityFromToken resolves a bearer token to the signed-in user. Revoked
// and expired tokens fail.
func (a *AuthHandler) IdentityFromToken(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return a.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token")
	}
	active, err := a.sessionRepo.IsActive(tokenString)
	if err != nil {
		return Identity{}, err
	}
	if !active {
		return Identity{}, fmt.Errorf("session revoked or expired")
	}
	return Identity{
		UID:         claims.UID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
		IsAdmin:     a.IsAdminEmail(claims.Email),
	}, nil
}

func (a *AuthHandler) IsAdminEmail(email string) bool {
	return a.adminEmails[strings.ToLower(email)]
}
