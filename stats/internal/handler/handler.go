package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/Astemirdum/book-lending/pkg/metrics"
	md "github.com/Astemirdum/book-lending/pkg/middleware"
	"github.com/Astemirdum/book-lending/stats/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type Handler struct {
	statsSvc StatsService
	tokens   md.TokenParser
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func New(statsSvc StatsService, tokens md.TokenParser, m *metrics.Metrics, log *zap.Logger) *Handler {
	if m == nil {
		m = metrics.Nop()
	}
	return &Handler{
		statsSvc: statsSvc,
		tokens:   tokens,
		metrics:  m,
		log:      log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{StackSize: 4 << 10}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", md.MetricsHandler(h.metrics))

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.Metrics(h.metrics),
		md.NewRateLimiter(apiRPS),
		md.Bearer(h.tokens),
	)
	api.GET("/stats", h.GetStats)
	api.GET("/stats/me", h.GetMyStats)
	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// GetStats lists every user. user_id and since (YYYY-MM-DD) narrow it down.
func (h *Handler) GetStats(c echo.Context) error {
	var f model.Filter
	if raw := c.QueryParam("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
		}
		f.UserID = id
	}
	if raw := c.QueryParam("since"); raw != "" {
		since, err := time.Parse(dateLayout, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since")
		}
		f.Since = since
	}
	return h.stats(c, f)
}

func (h *Handler) GetMyStats(c echo.Context) error {
	id, err := auth.GetIdentity(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return h.stats(c, model.Filter{UserID: id.UserID})
}

func (h *Handler) stats(c echo.Context, f model.Filter) error {
	stat, err := h.statsSvc.GetStats(c.Request().Context(), f)
	if err != nil {
		h.log.Error("GetStats", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stat)
}
