package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davicafu/fourthwall-relay/internal/webhook/application"
	"github.com/davicafu/fourthwall-relay/internal/webhook/domain"
	"github.com/davicafu/fourthwall-relay/pkg/utils"
)

// SignatureHeader es la cabecera donde Fourthwall envía la firma HMAC.
const SignatureHeader = "X-Fourthwall-Hmac-Sha256"

// WebhookHandler encapsula el endpoint HTTP de webhooks de Fourthwall.
type WebhookHandler struct {
	processor *application.WebhookProcessor
}

// NewWebhookHandler crea un nuevo WebhookHandler.
func NewWebhookHandler(processor *application.WebhookProcessor) *WebhookHandler {
	return &WebhookHandler{processor: processor}
}

// ---------------- Handlers ----------------

// HandleWebhook endpoint POST /webhooks/fourthwall.
//
// La verificación de firma necesita el cuerpo crudo, así que se lee entero
// antes de decodificar nada. Los cuerpos de respuesta son contrato fijo con
// el productor: no cambiar las claves ni los textos.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.SendInternalServerError(c, "Internal server error")
		return
	}

	signature := c.GetHeader(SignatureHeader)

	err = h.processor.Process(c.Request.Context(), rawBody, signature)
	switch {
	case errors.Is(err, domain.ErrInvalidSignature):
		utils.SendUnauthorized(c, "Invalid signature")
	case errors.Is(err, domain.ErrEventIgnored):
		utils.SendMessage(c, http.StatusOK, "Event ignored")
	case err != nil:
		// Sin detalle interno hacia el llamante.
		utils.SendInternalServerError(c, "Internal server error")
	default:
		utils.SendStatus(c, http.StatusOK, "success")
	}
}
