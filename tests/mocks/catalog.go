package mocks

import (
	"context"
	"sync"

	"github.com/davicafu/fourthwall-relay/internal/webhook/domain"
)

// CatalogMock simula el catálogo de productos de Fourthwall: devuelve un
// producto fijo o un error configurado, y cuenta las llamadas recibidas.
type CatalogMock struct {
	mu      sync.Mutex
	Product map[string]interface{}
	Err     error
	Calls   int
}

// Verificación estática del puerto.
var _ domain.ProductCatalog = (*CatalogMock)(nil)

func (c *CatalogMock) GetProduct(ctx context.Context, productID string) (map[string]interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls++
	return c.Product, c.Err
}

// CallCount devuelve cuántas veces se consultó el catálogo.
func (c *CatalogMock) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Calls
}
