package domain

import (
	"context"
	"errors"
	"fmt"
)

// ---------- Errores de dominio ----------
var (
	// ErrInvalidSignature indica que la firma HMAC del webhook no coincide.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrEventIgnored indica que el tipo de evento está fuera del conjunto
	// aceptado por el endpoint. No es un fallo: responde 200 "Event ignored".
	ErrEventIgnored = errors.New("event type ignored")
)

// ---------- Interfaces (Ports) ----------

// MessageSink es el destino final del mensaje formateado (webhook de chat).
// Send devuelve true solo si la entrega obtuvo un 2xx; cualquier fallo de
// transporte o de configuración se degrada a false, nunca a un error.
type MessageSink interface {
	Send(ctx context.Context, msg Message) bool
}

// ProductCatalog consulta el catálogo de productos de la plataforma, usado
// solo como fuente de datos de respaldo cuando el webhook no trae URL.
// Todas las ausencias (sin credenciales, timeout, respuesta no válida) se
// devuelven como (nil, nil) o como error que el llamante degrada a ausencia.
type ProductCatalog interface {
	GetProduct(ctx context.Context, productID string) (map[string]interface{}, error)
}

// ProductCache cachea respuestas del catálogo (lecturas upstream, nunca
// eventos entrantes).
type ProductCache interface {
	// Get intenta poblar dest (puntero) con el valor asociado a la key.
	// Devuelve (true, nil) si hay hit y dest fue rellenado.
	// Devuelve (false, nil) si es miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set serializa y guarda el valor con TTL en segundos.
	Set(ctx context.Context, key string, val interface{}, ttlSecs int) error

	// Delete elimina la key del cache.
	Delete(ctx context.Context, key string) error
}

// ---------- Helpers comunes (cache keys, etc.) ----------

// CacheKeyByProductID forma una key consistente para cachear productos del catálogo.
func CacheKeyByProductID(productID string) string {
	return fmt.Sprintf("fourthwall:product:%s", productID)
}
