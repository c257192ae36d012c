package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) UserService {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Alert{}))

	return NewUserService(NewUserRepository(db))
}

func TestRegisterStoresHash(t *testing.T) {
	s := newTestService(t)

	registered, err := s.Register(context.Background(), domain.RegisterRequest{Username: "alice", Password: "pw123"})
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", registered.PasswordHash)
	assert.True(t, VerifyPassword(registered, "pw123"))
	assert.False(t, VerifyPassword(registered, "pw124"))
}

func TestRegisterValidation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, domain.RegisterRequest{Username: "  ", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, err = s.Register(ctx, domain.RegisterRequest{Username: "alice", Password: ""})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	_, err = s.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	// Unknown user and wrong password produce the same error.
	_, err = s.Login(ctx, domain.LoginRequest{Username: "bob", Password: "pw123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = s.Login(ctx, domain.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	loggedIn, err := s.Login(ctx, domain.LoginRequest{Username: "alice", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", loggedIn.Username)
}
