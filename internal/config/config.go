package config

import (
	"os"
	"time"
)

// Config agrupa toda la configuración del servicio, cargada una sola vez en
// el arranque e inyectada en los constructores (nunca se lee entorno a mitad
// de una petición).
type Config struct {
	HTTPPort string

	// Discord (sink de mensajes)
	DiscordWebhookURL  string
	DiscordMerchRoleID string

	// Fourthwall (origen de webhooks y catálogo de respaldo)
	FourthwallWebhookSecret string
	FourthwallAPIBaseURL    string
	FourthwallAPIUsername   string
	FourthwallAPIPassword   string
	FourthwallShopDomain    string // ej. apothecaria-shop.fourthwall.com

	// Cache de lecturas del catálogo
	RedisAddr string
	CacheTTL  time.Duration

	// Timeout de los clientes HTTP salientes (sink y catálogo)
	HTTPClientTimeout time.Duration
}

func LoadConfig() *Config {
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	getDurationEnv := func(key string, fallback time.Duration) time.Duration {
		if v := os.Getenv(key); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				return d
			}
		}
		return fallback
	}

	return &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),

		DiscordWebhookURL:  getEnv("DISCORD_WEBHOOK_URL", ""),
		DiscordMerchRoleID: getEnv("DISCORD_MERCH_ROLE_ID", ""),

		FourthwallWebhookSecret: getEnv("FOURTHWALL_WEBHOOK_SECRET", ""),
		FourthwallAPIBaseURL:    getEnv("FOURTHWALL_API_BASE_URL", "https://api.fourthwall.com/v1"),
		FourthwallAPIUsername:   getEnv("FOURTHWALL_API_USERNAME", ""),
		FourthwallAPIPassword:   getEnv("FOURTHWALL_API_PASSWORD", ""),
		FourthwallShopDomain:    getEnv("FOURTHWALL_SHOP_DOMAIN", ""),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTL:  getDurationEnv("CACHE_TTL", 5*time.Minute),

		HTTPClientTimeout: getDurationEnv("HTTP_CLIENT_TIMEOUT", 10*time.Second),
	}
}
