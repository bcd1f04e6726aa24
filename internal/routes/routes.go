package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/findme/internal/config"
	"github.com/xyz-asif/findme/internal/features/consultation"
	"github.com/xyz-asif/findme/internal/features/intake"
	"github.com/xyz-asif/findme/internal/features/notifications"
	"github.com/xyz-asif/findme/internal/features/report"
	"github.com/xyz-asif/findme/internal/middleware"
	"github.com/xyz-asif/findme/internal/pkg/backend"
	"github.com/xyz-asif/findme/internal/pkg/logger"
	"github.com/xyz-asif/findme/internal/pkg/notify"
	"github.com/xyz-asif/findme/internal/pkg/ratelimit"
	"github.com/xyz-asif/findme/internal/pkg/response"
	"github.com/xyz-asif/findme/internal/pkg/session"
)

const noticeSweepInterval = time.Second

// reportSubmitter picks the report transport named by cfg.
func reportSubmitter(cfg *config.Config, client *backend.Client) report.Submitter {
	if cfg.ReportTransport == "http" {
		return report.NewHTTPSubmitter(client)
	}
	if cfg.ReportTransport != "simulate" {
		logger.Warn("unknown REPORT_TRANSPORT %q, using simulate", cfg.ReportTransport)
	}
	return report.NewSimulatedSubmitter(cfg.ReportSubmitDelay)
}

// SetupRoutes builds every feature and mounts it under /api/v1. Background
// sweepers stop when ctx is done.
func SetupRoutes(ctx context.Context, router *gin.Engine, cfg *config.Config) {
	api := router.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		response.Success(c, map[string]interface{}{
			"status":    "ok",
			"time":      time.Now().Unix(),
			"transport": cfg.ReportTransport,
		})
	})

	api.Use(middleware.Session(middleware.SessionConfig{
		Secret:       cfg.SessionSecret,
		TTL:          cfg.SessionTTL,
		SecureCookie: cfg.IsProduction(),
	}))

	// Shared infrastructure
	notices := notify.NewQueue(cfg.NotificationTTL, cfg.NotificationMaxTTL, cfg.NotificationLimit)
	notices.StartSweeper(ctx, noticeSweepInterval)

	client := backend.NewClient(cfg.APIBaseURL, nil)

	cleanupEvery := cfg.SessionTTL / 4
	if cleanupEvery < time.Minute {
		cleanupEvery = time.Minute
	}

	drafts := session.NewRegistry(cfg.SessionTTL, report.NewDraft)
	drafts.StartCleanup(ctx, cleanupEvery)
	flows := session.NewRegistry(cfg.SessionTTL, consultation.NewFlow)
	flows.StartCleanup(ctx, cleanupEvery)

	limiter := ratelimit.New(cfg.ConsultationRateLimit, cfg.ConsultationRateWindow)
	limiter.StartCleanup(ctx, cfg.ConsultationRateWindow)

	// Features
	reports := report.NewService(drafts, intake.NewPipeline(), notices, reportSubmitter(cfg, client), cfg.APIBaseURL)
	consultations := consultation.NewService(flows, consultation.NewCounselorClient(client), notices, cfg.APIBaseURL)

	report.RegisterRoutes(api, reports)
	consultation.RegisterRoutes(api, consultations, limiter)
	notifications.RegisterRoutes(ctx, api, notices, cfg.AllowedOrigins())
}
