package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues an HS256 token carrying the user's unique code.
func GenerateToken(secret []byte, uniqueCode string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"unique_code": uniqueCode,
		"exp":         time.Now().Add(time.Hour * 72).Unix(),
	})
	return token.SignedString(secret)
}

// ParseToken validates a token and returns the unique code it carries.
func ParseToken(secret []byte, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	code, _ := claims["unique_code"].(string)
	if code == "" {
		return "", errors.New("unique_code claim missing")
	}
	return code, nil
}
