package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

// Config holds admin token settings.
type Config struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTTTL    time.Duration `mapstructure:"jwt_ttl"`
}

// New returns an HS256 authenticator for admin tokens.
func New(secret string) (*jwtauth.JWTAuth, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	return jwtauth.New("HS256", []byte(secret), nil), nil
}

// VerifyToken checks signature and expiry and returns the token subject.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	return t.Subject(), nil
}

// NewToken issues an admin token for subject valid for ttl.
func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	_, ts, err := jwtAuth.Encode(claims)
	return ts, err
}
