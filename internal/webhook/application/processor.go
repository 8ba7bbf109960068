package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/davicafu/fourthwall-relay/internal/webhook/domain"
)

// WebhookProcessor orquesta el pipeline completo de una petición:
// verificar → filtrar por tipo → formatear → entregar.
//
// Cada petición es dueña de sus datos de principio a fin; el único estado
// compartido del proceso es la configuración inmutable inyectada aquí.
type WebhookProcessor struct {
	formatter *MessageFormatter
	sink      domain.MessageSink
	secret    string
	log       *zap.Logger
}

// NewWebhookProcessor crea el procesador con sus dependencias.
func NewWebhookProcessor(formatter *MessageFormatter, sink domain.MessageSink, secret string, log *zap.Logger) *WebhookProcessor {
	return &WebhookProcessor{
		formatter: formatter,
		sink:      sink,
		secret:    secret,
		log:       log,
	}
}

// Process ejecuta el pipeline sobre el cuerpo crudo de la petición.
//
// Devuelve:
//   - domain.ErrInvalidSignature si la firma HMAC no valida (→ 401),
//   - domain.ErrEventIgnored si el tipo está fuera del conjunto aceptado (→ 200),
//   - otro error solo ante payload indescifrable (→ 500),
//   - nil cuando el despacho se intentó; un fallo de entrega al sink se
//     registra pero nunca se propaga al origen del evento.
func (p *WebhookProcessor) Process(ctx context.Context, rawBody []byte, signature string) error {
	// La verificación va antes que cualquier otro paso: una firma inválida
	// corta el pipeline sin invocar el formatter ni el sink.
	if !domain.VerifySignature(rawBody, signature, p.secret) {
		return domain.ErrInvalidSignature
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(rawBody, &raw); err != nil {
		return fmt.Errorf("unmarshal webhook body: %w", err)
	}
	event := domain.NewInboundEvent(raw)

	if !domain.IsAcceptedEvent(event.Type) {
		p.log.Info("Evento fuera del conjunto aceptado, ignorado",
			zap.String("event_type", event.Type))
		return domain.ErrEventIgnored
	}

	deliveryID := uuid.NewString() // correlación en logs, no viaja en el mensaje
	p.log.Info("Procesando evento de Fourthwall",
		zap.String("delivery_id", deliveryID),
		zap.String("event_type", event.Type))

	message := p.formatter.Format(ctx, event.Type, event)

	if ok := p.sink.Send(ctx, message); !ok {
		// A lo sumo un intento de entrega por evento; el origen recibe
		// éxito igualmente una vez intentado el despacho.
		p.log.Warn("La entrega al sink falló",
			zap.String("delivery_id", deliveryID),
			zap.String("event_type", event.Type))
		return nil
	}

	p.log.Info("✅ Evento entregado al sink",
		zap.String("delivery_id", deliveryID),
		zap.String("event_type", event.Type))
	return nil
}
