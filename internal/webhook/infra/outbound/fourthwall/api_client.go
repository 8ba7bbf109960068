package fourthwall

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/davicafu/fourthwall-relay/internal/webhook/domain"
)

// DefaultBaseURL es la raíz pública del catálogo de Fourthwall.
const DefaultBaseURL = "https://api.fourthwall.com/v1"

// APIClient consulta el catálogo de productos de Fourthwall con basic auth.
// Es solo una fuente de respaldo: toda condición de fallo (sin credenciales,
// timeout, respuesta no 2xx, JSON inválido) se degrada a ausencia.
type APIClient struct {
	baseURL  string
	username string
	password string
	client   *http.Client
	log      *zap.Logger
}

// Verificación estática del puerto.
var _ domain.ProductCatalog = (*APIClient)(nil)

// NewAPIClient crea el cliente del catálogo. Con credenciales vacías el
// cliente queda deshabilitado y GetProduct devuelve siempre ausencia.
func NewAPIClient(baseURL, username, password string, timeout time.Duration, log *zap.Logger) *APIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &APIClient{
		baseURL:  baseURL,
		username: username,
		password: password,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

// GetProduct obtiene los detalles completos de un producto.
// Devuelve (nil, nil) para "sin resultado"; el error solo informa, el
// llamante lo trata igualmente como ausencia.
func (c *APIClient) GetProduct(ctx context.Context, productID string) (map[string]interface{}, error) {
	if c.username == "" || c.password == "" {
		return nil, nil
	}

	url := fmt.Sprintf("%s/products/%s", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("El catálogo respondió con estado no exitoso",
			zap.String("product_id", productID),
			zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	var product map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return product, nil
}
