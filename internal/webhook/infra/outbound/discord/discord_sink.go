package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/davicafu/fourthwall-relay/internal/webhook/domain"
)

// Sink entrega mensajes formateados al webhook de Discord. Implementa el
// puerto MessageSink: los fallos de configuración o transporte se degradan a
// false y se registran, nunca llegan al origen del evento.
type Sink struct {
	webhookURL string
	client     *http.Client
	log        *zap.Logger
}

// Verificación estática del puerto.
var _ domain.MessageSink = (*Sink)(nil)

// NewSink crea el adaptador. Una webhookURL vacía deshabilita la entrega.
func NewSink(webhookURL string, timeout time.Duration, log *zap.Logger) *Sink {
	return &Sink{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Send hace POST del mensaje como JSON. Devuelve true solo con respuesta 2xx.
func (s *Sink) Send(ctx context.Context, msg domain.Message) bool {
	if s.webhookURL == "" {
		s.log.Warn("Discord webhook URL no configurada, entrega omitida")
		return false
	}

	body, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("No se pudo serializar el mensaje para Discord", zap.Error(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		s.log.Error("No se pudo construir la petición a Discord", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("Error enviando mensaje a Discord", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Se captura el cuerpo para diagnóstico; Discord suele explicar el rechazo.
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		s.log.Error("Discord rechazó el mensaje",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody))
		return false
	}

	s.log.Info("Mensaje enviado a Discord correctamente")
	return true
}

// SendSimple envía un mensaje de texto plano sin embeds.
func (s *Sink) SendSimple(ctx context.Context, content string) bool {
	return s.Send(ctx, domain.Message{Content: content})
}

// SendEmbed envía un único embed sin contenido adicional.
func (s *Sink) SendEmbed(ctx context.Context, embed domain.Embed) bool {
	return s.Send(ctx, domain.Message{Embeds: []domain.Embed{embed}})
}
