// Package httpapi serves plans, adaptation reports and calibration over a
// small JSON API.
package httpapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/meridian/internal/service"
	"github.com/gin-gonic/gin"
)

type Config struct {
	// ProfileID is used when a request does not name a profile.
	ProfileID  string
	WindowDays int
	Logger     *slog.Logger
}

// Handler holds the use cases behind every route.
type Handler struct {
	plans       service.PlanService
	adaptation  service.AdaptationService
	calibration service.CalibrationService
	cfg         Config
}

func NewHandler(plans service.PlanService, adaptation service.AdaptationService, calibration service.CalibrationService, cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{plans: plans, adaptation: adaptation, calibration: calibration, cfg: cfg}
}

// Router returns the gin engine with all routes registered.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h.cfg.Logger))

	router.GET("/healthz", h.healthz)
	api := router.Group("/api")
	{
		api.GET("/plan", h.getPlan)
		api.GET("/adaptation", h.getAdaptation)
		api.POST("/calibrate", h.postCalibrate)
	}
	return router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (h *Handler) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger logs one line per request at info level.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http_request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
