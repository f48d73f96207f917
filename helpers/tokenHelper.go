package helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const RoleAdmin = "ADMIN"

type SignedDetails struct {
	SessionID string
	Role      string
	jwt.StandardClaims
}

// AdminAuth holds what the admin gate needs: the bcrypt hash of the admin
// password and the key tokens are signed with.
type AdminAuth struct {
	PasswordHash string
	SecretKey    []byte
	TokenTTL     time.Duration
}

func NewAdminAuth(password string, secretKey string, ttl time.Duration) (AdminAuth, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return AdminAuth{}, err
	}
	return AdminAuth{PasswordHash: hash, SecretKey: []byte(secretKey), TokenTTL: ttl}, nil
}

// GenerateAdminToken signs a token that is only valid for sessionID.
func (a AdminAuth) GenerateAdminToken(sessionID string, now time.Time) (signedToken string, expiresAt time.Time, err error) {
	expiresAt = now.Add(a.TokenTTL)
	claims := SignedDetails{
		SessionID: sessionID,
		Role:      RoleAdmin,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	}
	signedToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.SecretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign admin token: %w", err)
	}
	return signedToken, expiresAt, nil
}

func (a AdminAuth) ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return a.SecretKey, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, errors.New("the token is invalid")
	}
	if claims.Role != RoleAdmin {
		return nil, errors.New("token does not grant admin access")
	}
	return claims, nil
}
