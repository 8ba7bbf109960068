package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInboundEvent_TypeDefaultsToUnknown(t *testing.T) {
	event := NewInboundEvent(map[string]interface{}{"data": map[string]interface{}{}})
	assert.Equal(t, "unknown", event.Type)

	event = NewInboundEvent(map[string]interface{}{"type": "PRODUCT_CREATED"})
	assert.Equal(t, EventProductCreated, event.Type)
}

func TestInboundEvent_PayloadUnderDataKey(t *testing.T) {
	event := NewInboundEvent(map[string]interface{}{
		"type": "PRODUCT_CREATED",
		"data": map[string]interface{}{"name": "Mug"},
	})

	assert.Equal(t, "Mug", event.Payload()["name"])
}

func TestInboundEvent_PayloadAtTopLevel(t *testing.T) {
	// El productor también envía el objeto sin anidar bajo `data`.
	event := NewInboundEvent(map[string]interface{}{
		"type": "PRODUCT_CREATED",
		"name": "Mug",
	})

	assert.Equal(t, "Mug", event.Payload()["name"])
}

func TestIsAcceptedEvent(t *testing.T) {
	assert.True(t, IsAcceptedEvent(EventProductCreated))
	assert.True(t, IsAcceptedEvent(EventPromotionCreated))

	// El resto de tipos conocidos por el formatter no pasan la puerta del endpoint.
	assert.False(t, IsAcceptedEvent(EventOrderCreated))
	assert.False(t, IsAcceptedEvent(EventDonationCreated))
	assert.False(t, IsAcceptedEvent("SOMETHING_ELSE"))
	assert.False(t, IsAcceptedEvent("unknown"))
}
