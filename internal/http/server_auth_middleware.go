package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trait-match/internal/service"
)

const matchingIDKey = "matching_id"

// ServerAuthMiddleware valida el bearer token de servidor a servidor y guarda
// el matching id extraido en el contexto.
func ServerAuthMiddleware(tokens *service.ServerTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		matchingID, err := tokens.VerifyMatchingToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(matchingIDKey, matchingID)
		c.Next()
	}
}

// GetMatchingID obtiene el matching id validado desde el contexto.
func GetMatchingID(c *gin.Context) (string, bool) {
	val, ok := c.Get(matchingIDKey)
	if !ok {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}
