package integration

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/davicafu/fourthwall-relay/internal/webhook/application"
	"github.com/davicafu/fourthwall-relay/internal/webhook/domain"
	webhookHttp "github.com/davicafu/fourthwall-relay/internal/webhook/infra/inbound/http"
	"github.com/davicafu/fourthwall-relay/internal/webhook/infra/outbound/discord"
	"github.com/davicafu/fourthwall-relay/internal/webhook/infra/outbound/fourthwall"
	"github.com/davicafu/fourthwall-relay/tests/mocks"
)

// discordRecorder captura los mensajes que llegan al webhook de Discord falso.
type discordRecorder struct {
	mu       sync.Mutex
	messages []domain.Message
}

func (r *discordRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var msg domain.Message
		if err := json.NewDecoder(req.Body).Decode(&msg); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		r.mu.Lock()
		r.messages = append(r.messages, msg)
		r.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}
}

func (r *discordRecorder) received() []domain.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Message, len(r.messages))
	copy(out, r.messages)
	return out
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// newRelay monta el pipeline completo con adaptadores reales: sink de Discord
// apuntando al servidor de prueba y catálogo cacheado en memoria (sin
// credenciales: el respaldo degrada a URL construida o ausencia).
func newRelay(t *testing.T, discordURL, secret string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	apiClient := fourthwall.NewAPIClient("", "", "", time.Second, log)
	catalog := fourthwall.NewCachedCatalog(apiClient, mocks.NewDummyCache(), time.Minute, log)

	formatter := application.NewMessageFormatter(catalog, "123456789", "shop.example", log)
	sink := discord.NewSink(discordURL, time.Second, log)
	processor := application.NewWebhookProcessor(formatter, sink, secret, log)

	router := gin.New()
	webhookHttp.RegisterWebhookRoutes(router, webhookHttp.NewWebhookHandler(processor))
	return router
}

func postEvent(router *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/fourthwall", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set(webhookHttp.SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestEndToEnd_ProductCreated(t *testing.T) {
	recorder := &discordRecorder{}
	discordServer := httptest.NewServer(recorder.handler())
	defer discordServer.Close()

	secret := "super-secret"
	router := newRelay(t, discordServer.URL, secret)

	body := []byte(`{"type":"PRODUCT_CREATED","data":{"name":"Mug","price":12,"currency":"USD","url":"https://shop.example/mug"}}`)
	rec := postEvent(router, body, signBody(secret, body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())

	// --- El sink recibe exactamente un mensaje con el contrato esperado ---
	messages := recorder.received()
	require.Len(t, messages, 1)
	embed := messages[0].Embeds[0]
	assert.Equal(t, "🛍️ Mug", embed.Title)
	assert.Contains(t, embed.Description, "USD 12")
	assert.Equal(t, "https://shop.example/mug", embed.URL)
	assert.Equal(t, 5763719, embed.Color)
	assert.Equal(t, "<@&123456789> New merch just dropped!", messages[0].Content)
}

func TestEndToEnd_PromotionCreated(t *testing.T) {
	recorder := &discordRecorder{}
	discordServer := httptest.NewServer(recorder.handler())
	defer discordServer.Close()

	router := newRelay(t, discordServer.URL, "") // sin secret: verificación deshabilitada

	body := []byte(`{"type":"PROMOTION_CREATED","data":{"code":"SUMMER15","discount":{"type":"PERCENTAGE","percentage":15}}}`)
	rec := postEvent(router, body, "")

	assert.Equal(t, http.StatusOK, rec.Code)

	messages := recorder.received()
	require.Len(t, messages, 1)
	assert.Equal(t, "🎉 New Promotion!", messages[0].Embeds[0].Title)
	assert.Equal(t, 15844367, messages[0].Embeds[0].Color)
}

func TestEndToEnd_IgnoredTypeNeverReachesSink(t *testing.T) {
	recorder := &discordRecorder{}
	discordServer := httptest.NewServer(recorder.handler())
	defer discordServer.Close()

	router := newRelay(t, discordServer.URL, "")

	body := []byte(`{"type":"ORDER_CREATED","data":{"id":"ord_1"}}`)
	rec := postEvent(router, body, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Event ignored"}`, rec.Body.String())
	assert.Empty(t, recorder.received())
}

func TestEndToEnd_BadSignatureNeverReachesSink(t *testing.T) {
	recorder := &discordRecorder{}
	discordServer := httptest.NewServer(recorder.handler())
	defer discordServer.Close()

	router := newRelay(t, discordServer.URL, "super-secret")

	body := []byte(`{"type":"PRODUCT_CREATED","data":{"name":"Mug"}}`)
	rec := postEvent(router, body, "firma-falsificada")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, recorder.received())
}

func TestEndToEnd_ConstructedURLFallback(t *testing.T) {
	recorder := &discordRecorder{}
	discordServer := httptest.NewServer(recorder.handler())
	defer discordServer.Close()

	router := newRelay(t, discordServer.URL, "")

	// Sin URL en el payload y sin catálogo utilizable: URL construida.
	body := []byte(`{"type":"PRODUCT_CREATED","data":{"name":"Widget","id":"prod_7","slug":"widget"}}`)
	rec := postEvent(router, body, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	messages := recorder.received()
	require.Len(t, messages, 1)
	assert.Equal(t, "https://shop.example/products/widget", messages[0].Embeds[0].URL)
}
