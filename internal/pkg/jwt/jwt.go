package jwt

import (
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// acceptableSkew is the clock leeway allowed when validating exp.
const acceptableSkew = 30 * time.Second

type Service interface {
	GenerateAccessToken(userID string, contact string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]time.Time
	mu                        sync.RWMutex
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(acceptableSkew)),
		revokedTokens:             make(map[string]time.Time),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(userID string, contact string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = j.now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"contact": contact,
		"type":    "access",
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

// RevokeToken blacklists token until its exp claim passes. Entries past their expiry are dropped on each call.
func (j *JWTService) RevokeToken(token string) {
	expiresAt := j.expiryOf(token)

	j.mu.Lock()
	defer j.mu.Unlock()
	now := j.now()
	for t, exp := range j.revokedTokens {
		if exp.Before(now) {
			delete(j.revokedTokens, t)
		}
	}
	j.revokedTokens[token] = expiresAt
}

// expiryOf returns when token stops verifying. Tokens that do not decode are kept for a full access lifetime.
func (j *JWTService) expiryOf(token string) time.Time {
	if decoded, err := j.tokenAuth.Decode(token); err == nil && !decoded.Expiration().IsZero() {
		return decoded.Expiration().Add(acceptableSkew)
	}
	lifetime, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		lifetime = 24 * time.Hour
	}
	return j.now().Add(lifetime)
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
