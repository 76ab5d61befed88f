package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	autherrors "github.com/vetrivel962969-dotcom/Paperid/internal/auth/errors"
)

const accessTokenCookie = "access_token"

// tokenFromRequest prefers the access_token cookie and falls back to a
// bearer Authorization header.
func tokenFromRequest(c *gin.Context) string {
	if tok, err := c.Cookie(accessTokenCookie); err == nil && tok != "" {
		return tok
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

type claims struct {
	UserID string
	Role   string
}

func parseToken(secret []byte, tokenString string) (claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return claims{}, autherrors.ErrTokenExpired
		}
		return claims{}, autherrors.ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return claims{}, autherrors.ErrInvalidToken
	}
	userID, ok := mc["user_id"].(string)
	if !ok || userID == "" {
		return claims{}, autherrors.ErrInvalidToken
	}
	role, _ := mc["role"].(string)
	return claims{UserID: userID, Role: role}, nil
}
