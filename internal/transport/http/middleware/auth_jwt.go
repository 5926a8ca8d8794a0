package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gescon/internal/core/auth"
)

const (
	KeyClaims   = "claims"
	KeyUsername = "username"
)

// AuthJWT exige un bearer token valide. Absent, malformé, expiré ou mal
// signé : 401, sans distinction de cause côté client.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Missing Authorization Header"})
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token invalide ou expiré"})
			return
		}
		c.Set(KeyClaims, claims)
		c.Set(KeyUsername, claims.Username)
		c.Next()
	}
}
