package utils

import (
	"errors"

	"careconnect/config"
	"careconnect/models"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// ValidateToken parses and validates a token string and returns the token if valid.
// Tokens are issued by the identity service; this service only verifies them.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractIdentityFromToken pulls the acting identity (subject and role)
// out of a valid token.
func ExtractIdentityFromToken(tokenString string) (models.Identity, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return models.Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.Identity{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return models.Identity{}, errors.New("token does not contain a valid 'sub' claim")
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return models.Identity{}, errors.New("token does not contain a valid 'role' claim")
	}

	switch role {
	case models.RolePatient, models.RoleProvider, models.RoleAdmin:
	default:
		return models.Identity{}, errors.New("token carries an unknown role")
	}

	return models.Identity{ID: sub, Role: role}, nil
}
