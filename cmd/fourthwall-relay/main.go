package main

import (
	"context"

	config "github.com/davicafu/fourthwall-relay/internal/config"
	"github.com/davicafu/fourthwall-relay/internal/webhook/application"
	"github.com/davicafu/fourthwall-relay/internal/webhook/domain"
	webhookHttp "github.com/davicafu/fourthwall-relay/internal/webhook/infra/inbound/http"
	productCache "github.com/davicafu/fourthwall-relay/internal/webhook/infra/outbound/cache"
	"github.com/davicafu/fourthwall-relay/internal/webhook/infra/outbound/discord"
	"github.com/davicafu/fourthwall-relay/internal/webhook/infra/outbound/fourthwall"
	"github.com/davicafu/fourthwall-relay/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ---------------- Main ----------------
func main() {
	logger.Init()          // inicializa zap
	log := logger.Logger() // obtiene logger estructurado
	defer logger.Sync()    // flush buffers al salir

	ctx := context.Background()
	cfg := config.LoadConfig()

	if cfg.FourthwallWebhookSecret == "" {
		log.Warn("⚠️ FOURTHWALL_WEBHOOK_SECRET vacío: verificación de firma deshabilitada (solo desarrollo)")
	}
	if cfg.DiscordWebhookURL == "" {
		log.Warn("⚠️ DISCORD_WEBHOOK_URL vacío: los mensajes no se entregarán")
	}

	// ---------------- Cache ----------------
	var cacheInstance domain.ProductCache
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("⚠️ Redis no disponible, cache en memoria:", zap.Error(err))
		cacheInstance = productCache.NewInMemoryProductCache(cfg.CacheTTL, 3*cfg.CacheTTL)
	} else {
		cacheInstance = productCache.NewRedisProductCache(rdb, cfg.CacheTTL)
		log.Info("✅ Redis conectado, cache habilitado")
	}

	// ---------------- Catálogo -------------
	apiClient := fourthwall.NewAPIClient(
		cfg.FourthwallAPIBaseURL,
		cfg.FourthwallAPIUsername,
		cfg.FourthwallAPIPassword,
		cfg.HTTPClientTimeout,
		log,
	)
	catalog := fourthwall.NewCachedCatalog(apiClient, cacheInstance, cfg.CacheTTL, log)

	// --------------- Servicio --------------
	formatter := application.NewMessageFormatter(catalog, cfg.DiscordMerchRoleID, cfg.FourthwallShopDomain, log)
	sink := discord.NewSink(cfg.DiscordWebhookURL, cfg.HTTPClientTimeout, log)
	processor := application.NewWebhookProcessor(formatter, sink, cfg.FourthwallWebhookSecret, log)

	// ---------------- HTTP ----------------
	webhookHandler := webhookHttp.NewWebhookHandler(processor)
	router := gin.Default()
	webhookHttp.RegisterWebhookRoutes(router, webhookHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Info("🚀 Server running",
		zap.String("url", "http://localhost:"+cfg.HTTPPort),
	)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("failed to start server: %v", zap.Error(err))
	}
}
