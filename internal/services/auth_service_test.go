package services

import (
	"errors"
	"testing"
	"time"

	"github.com/berkekarsli/taskbox-backend/internal/dto"
	"github.com/berkekarsli/taskbox-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.RegisterRequest
		wantMsg string
	}{
		{
			name:    "missing name",
			req:     dto.RegisterRequest{Email: "a@x.com", Password: "secret1"},
			wantMsg: "All fields are required",
		},
		{
			name:    "missing email",
			req:     dto.RegisterRequest{Name: "Ann", Password: "secret1"},
			wantMsg: "All fields are required",
		},
		{
			name:    "missing password",
			req:     dto.RegisterRequest{Name: "Ann", Email: "a@x.com"},
			wantMsg: "All fields are required",
		},
		{
			name:    "name too short after trimming",
			req:     dto.RegisterRequest{Name: " A ", Email: "a@x.com", Password: "secret1"},
			wantMsg: "Name must be at least 2 characters",
		},
		{
			name:    "invalid email no domain",
			req:     dto.RegisterRequest{Name: "Ann", Email: "ann@", Password: "secret1"},
			wantMsg: "Invalid email format",
		},
		{
			name:    "invalid email no tld",
			req:     dto.RegisterRequest{Name: "Ann", Email: "ann@x", Password: "secret1"},
			wantMsg: "Invalid email format",
		},
		{
			name:    "invalid email single-letter tld",
			req:     dto.RegisterRequest{Name: "Ann", Email: "ann@x.c", Password: "secret1"},
			wantMsg: "Invalid email format",
		},
		{
			name:    "password too short",
			req:     dto.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "five5"},
			wantMsg: "Password must be at least 6 characters",
		},
	}

	svc := NewAuthService(newTestDB(t), testConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(&tt.req)
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Error())
		})
	}
}

func TestRegister_FirstUserBecomesAdmin(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())

	first, err := svc.Register(&dto.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, first.Role)

	second, err := svc.Register(&dto.RegisterRequest{Name: "Bob", Email: "bob@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, second.Role)

	third, err := svc.Register(&dto.RegisterRequest{Name: "Cam", Email: "cam@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, third.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Name: "Ann Again", Email: "ann@x.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Email comparison is case-insensitive because addresses are
	// lowercased before storage.
	_, err = svc.Register(&dto.RegisterRequest{Name: "Ann Caps", Email: "ANN@X.COM", Password: "secret2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_DuplicateKeyIsFinalArbiter(t *testing.T) {
	db := newTestDB(t)

	// Two inserts for the same address, bypassing the pre-check the
	// service runs. This is what two racing registrations reduce to
	// once both pass the pre-check; the unique index decides.
	first := models.User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com", Password: "hash1", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&first).Error)

	second := models.User{ID: uuid.New(), Name: "Ann Too", Email: "ann@x.com", Password: "hash2", Role: models.RoleUser}
	err := db.Create(&second).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	assert.ErrorIs(t, mapRegisterError(err), ErrEmailTaken)
}

func TestRegister_StorageFaultIsGeneric(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	require.NoError(t, db.Exec("DROP TABLE users").Error)

	_, err := svc.Register(&dto.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.Error(t, err)

	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr))
	assert.NotErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_EmailNormalized(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	user, err := svc.Register(&dto.RegisterRequest{Name: "Ann", Email: "  Ann@X.Com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", user.Email)
}

func TestRegister_PasswordStoredHashed(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.Where("email = ?", "ann@x.com").First(&stored).Error)

	assert.NotEqual(t, "secret1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))

	// Hashing the same plaintext again yields a different hash (salting)
	// that still verifies.
	rehash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	assert.NotEqual(t, stored.Password, string(rehash))
	assert.NoError(t, bcrypt.CompareHashAndPassword(rehash, []byte("secret1")))
}

func TestLogin_Success(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	user, token, err := svc.Login(&dto.LoginRequest{Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NotEmpty(t, token)
}

func TestLogin_FailuresIndistinguishable(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(&dto.LoginRequest{Email: "ann@x.com", Password: "wrongpw"})
	_, _, noSuchUser := svc.Login(&dto.LoginRequest{Email: "ghost@x.com", Password: "secret1"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, noSuchUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, noSuchUser)
}

func TestLogin_TokenClaimsAndExpiry(t *testing.T) {
	cfg := testConfig()
	svc := NewAuthService(newTestDB(t), cfg)

	registered, err := svc.Register(&dto.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, tokenString, err := svc.Login(&dto.LoginRequest{Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)

	assert.Equal(t, registered.ID.String(), claims["sub"])
	assert.Equal(t, registered.ID.String(), claims["id"])
	assert.Equal(t, "ann@x.com", claims["email"])
	assert.Equal(t, "Ann", claims["name"])
	assert.Equal(t, models.RoleAdmin, claims["role"])

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64(time.Hour.Seconds()), exp-iat)
}
