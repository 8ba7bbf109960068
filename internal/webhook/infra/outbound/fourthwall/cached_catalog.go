package fourthwall

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/davicafu/fourthwall-relay/internal/webhook/domain"
)

// CachedCatalog decora un ProductCatalog con cache-aside: solo cachea
// lecturas del catálogo (nunca eventos entrantes) y cualquier fallo del
// cache se ignora consultando el catálogo real.
type CachedCatalog struct {
	catalog domain.ProductCatalog
	cache   domain.ProductCache
	ttl     time.Duration
	log     *zap.Logger
}

var _ domain.ProductCatalog = (*CachedCatalog)(nil)

// NewCachedCatalog crea el decorador con el TTL configurado.
func NewCachedCatalog(catalog domain.ProductCatalog, cache domain.ProductCache, ttl time.Duration, log *zap.Logger) *CachedCatalog {
	return &CachedCatalog{
		catalog: catalog,
		cache:   cache,
		ttl:     ttl,
		log:     log,
	}
}

// GetProduct intenta el cache primero y delega en el catálogo en caso de miss.
// Solo se cachean resultados no vacíos: una ausencia puede ser transitoria
// (credenciales ausentes, timeout) y no debe quedarse pegada al TTL.
func (c *CachedCatalog) GetProduct(ctx context.Context, productID string) (map[string]interface{}, error) {
	key := domain.CacheKeyByProductID(productID)

	var cached map[string]interface{}
	if hit, err := c.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	} else if err != nil {
		c.log.Warn("Fallo leyendo el cache de productos", zap.String("key", key), zap.Error(err))
	}

	product, err := c.catalog.GetProduct(ctx, productID)
	if err != nil || product == nil {
		return product, err
	}

	if err := c.cache.Set(ctx, key, product, int(c.ttl.Seconds())); err != nil {
		c.log.Warn("Fallo guardando en el cache de productos", zap.String("key", key), zap.Error(err))
	}
	return product, nil
}
