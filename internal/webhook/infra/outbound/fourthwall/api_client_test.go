package fourthwall

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetProduct_MissingCredentials(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "", "", time.Second, zap.NewNop())

	product, err := client.GetProduct(context.Background(), "prod_1")

	// Sin credenciales el cliente queda deshabilitado: ausencia sin red.
	assert.NoError(t, err)
	assert.Nil(t, product)
	assert.False(t, called)
}

func TestGetProduct_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/prod_1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "usuario", user)
		assert.Equal(t, "clave", pass)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"prod_1","url":"https://shop.example/products/mug"}`))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "usuario", "clave", time.Second, zap.NewNop())

	product, err := client.GetProduct(context.Background(), "prod_1")

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "https://shop.example/products/mug", product["url"])
}

func TestGetProduct_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "usuario", "clave", time.Second, zap.NewNop())

	product, err := client.GetProduct(context.Background(), "nope")

	// Respuesta no exitosa se degrada a ausencia, no a error.
	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestGetProduct_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewAPIClient(server.URL, "usuario", "clave", time.Second, zap.NewNop())

	product, err := client.GetProduct(context.Background(), "prod_1")

	assert.Error(t, err)
	assert.Nil(t, product)
}

func TestGetProduct_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not-json`))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "usuario", "clave", time.Second, zap.NewNop())

	product, err := client.GetProduct(context.Background(), "prod_1")

	assert.Error(t, err)
	assert.Nil(t, product)
}

func TestNewAPIClient_DefaultBaseURL(t *testing.T) {
	client := NewAPIClient("", "usuario", "clave", time.Second, zap.NewNop())
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
