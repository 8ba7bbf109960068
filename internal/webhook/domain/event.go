package domain

// ---------- Tipos de evento de Fourthwall ----------

// Constantes con los tipos de evento conocidos. Se usan como clave de
// despacho en el formatter, siempre comparando el string literal del webhook.
const (
	EventProductCreated        = "PRODUCT_CREATED"
	EventPromotionCreated      = "PROMOTION_CREATED"
	EventOrderCreated          = "ORDER_CREATED"
	EventOrderUpdated          = "ORDER_UPDATED"
	EventOrderFulfilled        = "ORDER_FULFILLED"
	EventSubscriptionCreated   = "SUBSCRIPTION_CREATED"
	EventSubscriptionUpdated   = "SUBSCRIPTION_UPDATED"
	EventSubscriptionCancelled = "SUBSCRIPTION_CANCELLED"
	EventDonationCreated       = "DONATION_CREATED"
)

// acceptedEvents es el conjunto de tipos que el endpoint procesa. Cualquier
// otro tipo recibe "Event ignored" sin pasar por el formatter.
var acceptedEvents = map[string]struct{}{
	EventProductCreated:   {},
	EventPromotionCreated: {},
}

// IsAcceptedEvent indica si el tipo pertenece al conjunto aceptado del endpoint.
func IsAcceptedEvent(eventType string) bool {
	_, ok := acceptedEvents[eventType]
	return ok
}

// ---------- Evento entrante ----------

// InboundEvent es el payload crudo recibido desde Fourthwall: un discriminador
// `type` y el resto del objeto sin esquema garantizado. Inmutable una vez recibido.
type InboundEvent struct {
	Type string
	Raw  map[string]interface{}
}

// NewInboundEvent construye el evento a partir del objeto JSON ya decodificado.
// Si falta `type` se usa "unknown", igual que hace el productor en sus ejemplos.
func NewInboundEvent(raw map[string]interface{}) InboundEvent {
	eventType := "unknown"
	if t, ok := raw["type"].(string); ok && t != "" {
		eventType = t
	}
	return InboundEvent{Type: eventType, Raw: raw}
}

// Payload devuelve el objeto de datos del evento: el valor anidado bajo `data`
// si existe, o el objeto completo en caso contrario (el productor usa ambas formas).
func (e InboundEvent) Payload() map[string]interface{} {
	if data, ok := e.Raw["data"].(map[string]interface{}); ok {
		return data
	}
	return e.Raw
}
