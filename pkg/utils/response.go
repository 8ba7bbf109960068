// en pkg/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Los cuerpos de respuesta del webhook son contrato fijo con el productor
// (claves y textos planos), así que los helpers emiten el formato literal en
// lugar de envolver en una estructura propia.

// SendError envía una respuesta de error plana: {"error": message}.
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// SendMessage envía una respuesta informativa plana: {"message": message}.
func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// SendStatus envía una respuesta de estado plana: {"status": status}.
func SendStatus(c *gin.Context, statusCode int, status string) {
	c.JSON(statusCode, gin.H{"status": status})
}

// --- Helpers específicos para errores comunes ---

func SendUnauthorized(c *gin.Context, message string) {
	SendError(c, http.StatusUnauthorized, message)
}

func SendInternalServerError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, message)
}
