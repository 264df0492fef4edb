package router

import (
	"net/http"

	"afftrack/config"
	"afftrack/internal/attribution"
	"afftrack/internal/cache"
	"afftrack/internal/handler"
	"afftrack/internal/middleware"
	"afftrack/internal/repository"
	"afftrack/internal/service"
	"afftrack/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cacheStore cache.Cache) *gin.Engine {
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Repositories
	brandRepo := repository.NewBrandRepository(db)
	affiliateRepo := repository.NewAffiliateRepository(db)
	referrerRepo := repository.NewReferrerRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	clickRepo := repository.NewClickRepository(db)
	conversionRepo := repository.NewConversionRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)

	eventHub := ws.NewEventHub()

	// Services
	attributionSvc := service.NewAttributionService(
		cfg, brandRepo, affiliateRepo, referrerRepo, campaignRepo,
		linkRepo, clickRepo, conversionRepo,
		cacheStore, attribution.SystemClock(), eventHub,
	)
	payoutSvc := service.NewPayoutService(brandRepo, affiliateRepo, payoutRepo)

	// Handlers
	brandHandler := handler.NewBrandHandler(brandRepo)
	affiliateHandler := handler.NewAffiliateHandler(affiliateRepo)
	referrerHandler := handler.NewReferrerHandler(referrerRepo)
	campaignHandler := handler.NewCampaignHandler(campaignRepo)
	linkHandler := handler.NewLinkHandler(attributionSvc, linkRepo, clickRepo)
	trackingHandler := handler.NewTrackingHandler(cfg, attributionSvc)
	conversionHandler := handler.NewConversionHandler(attributionSvc, conversionRepo)
	payoutHandler := handler.NewPayoutHandler(payoutSvc, payoutRepo)

	// Public tracking surface, rate limited per IP since it faces the open web.
	trackingLimiter := middleware.NewKeyedRateLimiter(cfg.Tracking.RateLimit, cfg.Tracking.RateBurst)
	r.GET("/t/:code", middleware.RateLimit(trackingLimiter), trackingHandler.Redirect)

	r.GET("/ws/events", ws.ServeEvents(eventHub))

	api := r.Group("/api/v1")
	{
		api.POST("/postback", trackingHandler.Postback)

		brands := api.Group("/brands")
		{
			brands.POST("", brandHandler.Create)
			brands.GET("", brandHandler.List)
			brands.GET("/:id", brandHandler.Get)
			brands.PATCH("/:id/settings", brandHandler.UpdateSettings)
		}

		affiliates := api.Group("/affiliates")
		{
			affiliates.POST("", affiliateHandler.Create)
			affiliates.GET("", affiliateHandler.List)
			affiliates.GET("/:id", affiliateHandler.Get)
		}

		referrers := api.Group("/referrers")
		{
			referrers.POST("", referrerHandler.Create)
			referrers.GET("", referrerHandler.List)
			referrers.PATCH("/:id/active", referrerHandler.SetActive)
		}

		campaigns := api.Group("/campaigns")
		{
			campaigns.POST("", campaignHandler.Create)
			campaigns.GET("", campaignHandler.List)
			campaigns.GET("/:id", campaignHandler.Get)
			campaigns.PATCH("/:id/active", campaignHandler.SetActive)
			campaigns.POST("/:id/commission-rates", campaignHandler.CreateRate)
			campaigns.POST("/:id/creatives", campaignHandler.CreateCreative)
			campaigns.GET("/:id/creatives", campaignHandler.ListCreatives)
		}

		links := api.Group("/links")
		{
			links.POST("", linkHandler.Create)
			links.GET("", linkHandler.List)
			links.GET("/:id", linkHandler.Get)
			links.GET("/:id/clicks", linkHandler.ListClicks)
		}

		conversions := api.Group("/conversions")
		{
			conversions.GET("", conversionHandler.List)
			conversions.GET("/:id", conversionHandler.Get)
			conversions.PATCH("/:id/status", conversionHandler.Review)
		}

		payouts := api.Group("/payouts")
		{
			payouts.POST("", payoutHandler.Create)
			payouts.GET("", payoutHandler.List)
			payouts.GET("/balance", payoutHandler.Balance)
			payouts.GET("/:id", payoutHandler.Get)
			payouts.POST("/:id/transition", payoutHandler.Transition)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "afftrack"})
	})
	r.GET("/health/db", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
