package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const UserIDContextKey = "user_id"

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthRequired accepts HS256 bearer tokens signed with secret and stores the
// caller's user id in the request locals.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Unauthorized("Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return Unauthorized("Invalid authorization header format")
		}

		claims, err := ParseToken(secret, parts[1])
		if err != nil {
			return Unauthorized("Invalid or expired token")
		}

		c.Locals(UserIDContextKey, claims.UserID)
		return c.Next()
	}
}

// OptionalAuth stores the caller's user id when a valid bearer token is sent
// and lets every other request through anonymously.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parts := strings.Split(c.Get("Authorization"), " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := ParseToken(secret, parts[1]); err == nil {
				c.Locals(UserIDContextKey, claims.UserID)
			}
		}
		return c.Next()
	}
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func IssueToken(secret string, userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(userID, 10),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func GetUserID(c *fiber.Ctx) (int64, error) {
	userID, ok := c.Locals(UserIDContextKey).(int64)
	if !ok || userID <= 0 {
		return 0, Unauthorized("Authentication required")
	}
	return userID, nil
}
