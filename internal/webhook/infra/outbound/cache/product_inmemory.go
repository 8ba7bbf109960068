package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/davicafu/fourthwall-relay/internal/webhook/domain"
)

// cacheItem guarda el valor serializado y su expiración.
type cacheItem struct {
	value     []byte // bytes JSON, igual que haría Redis
	expiresAt time.Time
}

// InMemoryProductCache implementa el cache de productos con un mapa en
// memoria. Es el respaldo cuando Redis no está disponible.
type InMemoryProductCache struct {
	store      map[string]cacheItem
	mu         sync.RWMutex // múltiples lectores o un solo escritor
	defaultTTL time.Duration
	stopChan   chan struct{} // detiene la goroutine de limpieza
}

// Verificación estática del puerto.
var _ domain.ProductCache = (*InMemoryProductCache)(nil)

// NewInMemoryProductCache crea la instancia y arranca la limpieza periódica
// de claves expiradas en segundo plano.
func NewInMemoryProductCache(defaultTTL, cleanupInterval time.Duration) *InMemoryProductCache {
	c := &InMemoryProductCache{
		store:      make(map[string]cacheItem),
		defaultTTL: defaultTTL,
		stopChan:   make(chan struct{}),
	}

	go c.cleanupLoop(cleanupInterval)

	return c
}

// Get recupera un valor del cache. Seguro para uso concurrente.
func (c *InMemoryProductCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.store[key]
	if !ok {
		return false, nil // miss
	}
	if time.Now().UTC().After(item.expiresAt) {
		return false, nil // expirado, se trata como miss
	}

	if err := json.Unmarshal(item.value, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set serializa y guarda el valor. Con ttlSecs <= 0 aplica el TTL por defecto.
func (c *InMemoryProductCache) Set(ctx context.Context, key string, val interface{}, ttlSecs int) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}

	ttl := c.defaultTTL
	if ttlSecs > 0 {
		ttl = time.Duration(ttlSecs) * time.Second
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = cacheItem{
		value:     data,
		expiresAt: time.Now().UTC().Add(ttl),
	}
	return nil
}

// Delete elimina la key del cache.
func (c *InMemoryProductCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}

// Stop detiene la goroutine de limpieza.
func (c *InMemoryProductCache) Stop() {
	close(c.stopChan)
}

func (c *InMemoryProductCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now().UTC()
			c.mu.Lock()
			for key, item := range c.store {
				if now.After(item.expiresAt) {
					delete(c.store, key)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}
