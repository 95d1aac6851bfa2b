package http

import (
	"net/http"
	"testing"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/auth"
	"github.com/bluespark/hospital-hr-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Register - Success
func TestAuthHandler_Register_Success(t *testing.T) {
	ts := newTestServer(t)

	rec, resp := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", auth.RegisterRequest{
		Name:            "Joana Sitoe",
		Contact:         "841234567",
		Password:        "segredo123",
		ConfirmPassword: "segredo123",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "841234567", data["contact"])
}

// Test Register - contact outside the accepted prefixes
func TestAuthHandler_Register_InvalidContact(t *testing.T) {
	ts := newTestServer(t)

	rec, resp := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", auth.RegisterRequest{
		Name:            "Joana Sitoe",
		Contact:         "811234567",
		Password:        "segredo123",
		ConfirmPassword: "segredo123",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Details, "contact")
}

// Test Register - Invalid JSON
func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", "{")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Test Login - Success
func TestAuthHandler_Login_Success(t *testing.T) {
	ts := newTestServer(t)

	rec, resp := ts.do(t, http.MethodPost, "/api/v1/auth/token", "", auth.LoginRequest{Contact: "841234567", Password: "segredo123"})

	require.Equal(t, http.StatusCreated, rec.Code)
	data := resp.Data.(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.Equal(t, "Bearer", data["token_type"])
}

// Test Login - Invalid credentials
func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	ts := newTestServer(t)
	ts.auth.loginErr = auth.ErrInvalidCredentials

	rec, resp := ts.do(t, http.MethodPost, "/api/v1/auth/token", "", auth.LoginRequest{Contact: "841234567", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
}

// Test Logout - the token stops working afterwards
func TestAuthHandler_Logout_RevokesToken(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t)

	rec, _ := ts.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ts.jwtService.IsTokenRevoked(token))

	rec, _ = ts.do(t, http.MethodPost, "/api/v1/lifecycle/vacations", token, vacationBody())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, ts.lifecycle.vacations)
}

// Test Logout - No token
func TestAuthHandler_Logout_NoToken(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodPost, "/api/v1/auth/logout", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Test Me - returns the caller of the token
func TestAuthHandler_Me_Success(t *testing.T) {
	ts := newTestServer(t)

	rec, resp := ts.do(t, http.MethodGet, "/api/v1/users/me", ts.token(t), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "user-1", data["id"])
	assert.Equal(t, "Joana Sitoe", data["name"])
	assert.Equal(t, "841234567", data["contact"])
}

// Test Me - No token
func TestAuthHandler_Me_NoToken(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/users/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Test Me - user removed after the token was issued
func TestAuthHandler_Me_UserNotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.auth.meErr = user.ErrUserNotFound

	rec, resp := ts.do(t, http.MethodGet, "/api/v1/users/me", ts.token(t), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}
