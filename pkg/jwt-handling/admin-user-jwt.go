package jwthandling

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Information a token encodes
type AdminUserClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func GenerateNewAdminUserToken(expiresIn time.Duration, accountID string, role string, secretKey string) (tokenString string, err error) {
	claims := AdminUserClaims{
		role,
		jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(secretKey))
	return
}

func ValidateAdminUserToken(tokenString string, secretKey string) (claims *AdminUserClaims, valid bool, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminUserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if token == nil {
		return
	}
	claims, valid = token.Claims.(*AdminUserClaims)
	valid = valid && token.Valid
	return
}

// AdminSessionCodec adapts the JWT helpers to the token codec interface the
// account guard consumes.
type AdminSessionCodec struct {
	SignKey string
}

func (c *AdminSessionCodec) IssueAdminUserToken(accountID string, role string, expiresIn time.Duration) (string, error) {
	return GenerateNewAdminUserToken(expiresIn, accountID, role, c.SignKey)
}

func (c *AdminSessionCodec) VerifyAdminUserToken(tokenString string) (string, error) {
	claims, valid, err := ValidateAdminUserToken(tokenString, c.SignKey)
	if err != nil {
		return "", err
	}
	if !valid || claims.Subject == "" {
		return "", errors.New("token validation failed")
	}
	return claims.Subject, nil
}
