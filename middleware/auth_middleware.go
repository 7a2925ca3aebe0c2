package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/smartpark/cwsms/configs"
	"github.com/smartpark/cwsms/database"
	"github.com/smartpark/cwsms/services"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "cwsms_session"

// Protected gates a route behind a login. The session cookie is checked
// first; a bearer JWT is accepted as a fallback for clients that do not
// keep cookies.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(SessionCookie); token != "" {
			session, err := services.LookupSession(database.DB, token)
			if err == nil {
				c.Locals("userId", session.UserID)
				c.Locals("username", session.Username)
				return c.Next()
			}
		}

		if userID, username, ok := parseBearerToken(c.Get("Authorization")); ok {
			c.Locals("userId", userID)
			c.Locals("username", username)
			return c.Next()
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Authentication required. Please login.",
		})
	}
}

func parseBearerToken(header string) (uint, string, bool) {
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || raw == "" {
		return 0, "", false
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", false
	}
	username, ok := claims["username"].(string)
	if !ok {
		return 0, "", false
	}
	return uint(userID), username, true
}
