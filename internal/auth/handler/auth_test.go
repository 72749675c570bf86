package handler

import (
	"testing"
	"time"

	"github.com/drinkshop/backend/internal/configs"
	"github.com/drinkshop/backend/internal/repositories/sql/session"
	"github.com/drinkshop/backend/internal/repositories/sql/user"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
	nextID  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*user.User)}
}

func (f *fakeUserRepo) CreateUser(u *user.User) (uint, error) {
	f.nextID++
	u.ID = f.nextID
	f.byEmail[u.Email] = u
	return u.ID, nil
}

func (f *fakeUserRepo) GetUserByUID(uid string) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.UID == uid {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*user.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateDisplayName(uid, displayName string) error {
	u, err := f.GetUserByUID(uid)
	if err != nil {
		return err
	}
	u.DisplayName = displayName
	return nil
}

type fakeSessionRepo struct {
	active map[string]time.Time
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{active: make(map[string]time.Time)}
}

func (f *fakeSessionRepo) Save(userUID, token string, expiration time.Time) error {
	f.active[token] = expiration
	return nil
}

func (f *fakeSessionRepo) Revoke(token string) error {
	delete(f.active, token)
	return nil
}

func (f *fakeSessionRepo) IsActive(token string) (bool, error) {
	expiry, ok := f.active[token]
	return ok && expiry.After(time.Now()), nil
}

func (f *fakeSessionRepo) PurgeExpired() error {
	for token, expiry := range f.active {
		if expiry.Before(time.Now()) {
			delete(f.active, token)
		}
	}
	return nil
}

var _ user.Repository = (*fakeUserRepo)(nil)
var _ session.Repository = (*fakeSessionRepo)(nil)

func newTestAuth() *AuthHandler {
	return NewAuthHandler(newFakeUserRepo(), newFakeSessionRepo(), configs.Configs{
		JwtSecret:   "test-secret",
		AdminEmails: "admin@drinkshop.vn, Owner@DrinkShop.vn",
	})
}

func TestRegisterAndLogin(t *testing.T) {
	a := newTestAuth()

	response, err := a.Register(&RegisterRequest{
		Email:       "khach@example.com",
		Password:    "matkhau123",
		DisplayName: "Khách Hàng",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, response.UID)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "Khách Hàng", response.DisplayName)
	assert.False(t, response.IsAdmin)

	login, err := a.Login(&LoginRequest{Email: "khach@example.com", Password: "matkhau123"})
	assert.NoError(t, err)
	assert.Equal(t, response.UID, login.UID)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterRequest
	}{
		{"bad email", RegisterRequest{Email: "not-an-email", Password: "matkhau123", DisplayName: "A"}},
		{"short password", RegisterRequest{Email: "a@b.vn", Password: "12345", DisplayName: "A"}},
		{"blank display name", RegisterRequest{Email: "a@b.vn", Password: "matkhau123", DisplayName: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAuth()
			_, err := a.Register(&tt.request)
			assert.Error(t, err)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a := newTestAuth()
	_, err := a.Register(&RegisterRequest{Email: "khach@example.com", Password: "matkhau123", DisplayName: "A"})
	assert.NoError(t, err)
	_, err = a.Register(&RegisterRequest{Email: "khach@example.com", Password: "matkhau456", DisplayName: "B"})
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	a := newTestAuth()
	_, err := a.Register(&RegisterRequest{Email: "khach@example.com", Password: "matkhau123", DisplayName: "A"})
	assert.NoError(t, err)
	_, err = a.Login(&LoginRequest{Email: "khach@example.com", Password: "sai-mat-khau"})
	assert.Error(t, err)
}

func TestIdentityFromToken(t *testing.T) {
	a := newTestAuth()
	response, err := a.Register(&RegisterRequest{Email: "khach@example.com", Password: "matkhau123", DisplayName: "Khách"})
	assert.NoError(t, err)

	identity, err := a.IdentityFromToken(response.Token)
	assert.NoError(t, err)
	assert.Equal(t, response.UID, identity.UID)
	assert.Equal(t, "khach@example.com", identity.Email)
	assert.False(t, identity.IsGuest())

	_, err = a.IdentityFromToken("garbage-token")
	assert.Error(t, err)
}

func TestLogoutRevokesSession(t *testing.T) {
	a := newTestAuth()
	response, err := a.Register(&RegisterRequest{Email: "khach@example.com", Password: "matkhau123", DisplayName: "Khách"})
	assert.NoError(t, err)

	assert.NoError(t, a.Logout(response.Token))

	_, err = a.IdentityFromToken(response.Token)
	assert.Error(t, err, "revoked token no longer authenticates")
}

func TestAdminEmailMatching(t *testing.T) {
	a := newTestAuth()
	assert.True(t, a.IsAdminEmail("admin@drinkshop.vn"))
	assert.True(t, a.IsAdminEmail("OWNER@drinkshop.vn"), "matching ignores case")
	assert.False(t, a.IsAdminEmail("khach@example.com"))
}
