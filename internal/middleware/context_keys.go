package middleware

import "github.com/gin-gonic/gin"

// operatorIDKey is the key used to store the requesting operator's ID in the
// Gin context. Using a custom type prevents collisions.
const operatorIDKey = contextKey("operatorID")

// defaultOperatorID attributes writes made without an explicit operator
// header, such as scheduled imports.
const defaultOperatorID = "system"

// OperatorID creates a Gin middleware that records who is making the request.
// The deployment sits on a trusted internal network; the header is
// attribution for audit fields, not authentication.
func OperatorID() gin.HandlerFunc {
	return func(c *gin.Context) {
		operatorID := c.GetHeader("X-Operator-ID")
		if operatorID == "" {
			operatorID = defaultOperatorID
		}
		c.Set(string(operatorIDKey), operatorID)
		c.Next()
	}
}

// GetOperatorIDFromContext retrieves the operator ID from the Gin context.
func GetOperatorIDFromContext(c *gin.Context) string {
	operatorIDVal, exists := c.Get(string(operatorIDKey))
	if !exists {
		return defaultOperatorID
	}

	operatorID, ok := operatorIDVal.(string)
	if !ok || operatorID == "" {
		return defaultOperatorID
	}

	return operatorID
}
