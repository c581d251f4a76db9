package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const refreshWithin = 24 * time.Hour

// Tokens signs and verifies the HS256 bearer tokens handed out at login.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

func (t *Tokens) Issue(uid int, name string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  uid,
		"name": name,
		"exp":  time.Now().Add(t.ttl).Unix(),
	}).SignedString(t.secret)
}

func (t *Tokens) parse(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(tok *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// JWTAuth rejects requests without a valid bearer token and exposes the
// caller as user_id / user_name. Tokens close to expiry are reissued in
// the X-New-Token header.
func (t *Tokens) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		claims, err := t.parse(auth[7:])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		uid, ok1 := claims["uid"].(float64)
		name, ok2 := claims["name"].(string)
		if !ok1 || !ok2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}
		c.Set("user_id", int(uid))
		c.Set("user_name", name)

		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			if time.Until(exp.Time) < refreshWithin {
				if fresh, err := t.Issue(int(uid), name); err == nil {
					c.Header("X-New-Token", fresh)
				}
			}
		}

		c.Next()
	}
}
