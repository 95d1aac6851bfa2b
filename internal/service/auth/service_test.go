package auth

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/auth"
	"github.com/bluespark/hospital-hr-backend-go/internal/domain/user"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/database"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/jwt"
	"github.com/bluespark/hospital-hr-backend-go/internal/repository/postgresql"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
	testContact   = "841234567"
	testUserID    = "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8c"
)

var userColumns = []string{"id", "name", "contact", "password_hash", "created_at", "updated_at"}

func newTestAuthService(t *testing.T) (pgxmock.PgxPoolIface, jwt.Service, auth.AuthService) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	db := database.NewWithPool(mock)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	return mock, jwtService, NewAuthService(postgresql.NewUserRepository(db), jwtService)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register_Success(t *testing.T) {
	mock, _, svc := newTestAuthService(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE contact = $1)")).
		WithArgs(testContact).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(pgxmock.AnyArg(), "Joana Sitoe", testContact, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(testUserID, "Joana Sitoe", testContact, "hash", now, now))

	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:            " Joana Sitoe ",
		Contact:         testContact,
		Password:        "segredo123",
		ConfirmPassword: "segredo123",
	})

	require.NoError(t, err)
	assert.Equal(t, testUserID, resp.ID)
	assert.Equal(t, testContact, resp.Contact)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Register_ContactTaken(t *testing.T) {
	mock, _, svc := newTestAuthService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(testContact).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:            "Joana",
		Contact:         testContact,
		Password:        "segredo123",
		ConfirmPassword: "segredo123",
	})

	assert.ErrorIs(t, err, user.ErrUserContactExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Login_Success(t *testing.T) {
	mock, jwtService, svc := newTestAuthService(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE contact = $1")).
		WithArgs(testContact).
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(testUserID, "Joana", testContact, hashed(t, "segredo123"), now, now))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Contact: testContact, Password: "segredo123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Greater(t, resp.AccessTokenExpiresIn, now.Unix())

	token, err := jwtService.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	claims := token.PrivateClaims()
	assert.Equal(t, testUserID, claims["user_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mock, _, svc := newTestAuthService(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE contact = $1")).
		WithArgs(testContact).
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(testUserID, "Joana", testContact, hashed(t, "segredo123"), now, now))

	_, err := svc.Login(context.Background(), auth.LoginRequest{Contact: testContact, Password: "wrongpass"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Login_UnknownContact(t *testing.T) {
	mock, _, svc := newTestAuthService(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE contact = $1")).
		WithArgs(testContact).
		WillReturnRows(pgxmock.NewRows(userColumns))

	_, err := svc.Login(context.Background(), auth.LoginRequest{Contact: testContact, Password: "segredo123"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Logout(t *testing.T) {
	_, jwtService, svc := newTestAuthService(t)

	require.NoError(t, svc.Logout(context.Background(), "some.jwt.token"))
	assert.True(t, jwtService.IsTokenRevoked("some.jwt.token"))

	assert.ErrorIs(t, svc.Logout(context.Background(), "  "), auth.ErrInvalidToken)
}

func TestAuthService_Me(t *testing.T) {
	mock, _, svc := newTestAuthService(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(testUserID).
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(testUserID, "Joana Sitoe", testContact, "hash", now, now))

	resp, err := svc.Me(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, testUserID, resp.ID)
	assert.Equal(t, "Joana Sitoe", resp.Name)
	assert.Equal(t, testContact, resp.Contact)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Me_UserNotFound(t *testing.T) {
	mock, _, svc := newTestAuthService(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(testUserID).
		WillReturnRows(pgxmock.NewRows(userColumns))

	_, err := svc.Me(context.Background(), testUserID)

	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
