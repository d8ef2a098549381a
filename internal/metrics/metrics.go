package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_leads_created_total",
			Help: "Total number of leads created",
		},
	)

	leadMoves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_lead_status_changes_total",
			Help: "Total number of pipeline stage changes",
		},
		[]string{"from", "to"},
	)

	importRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_import_rows_total",
			Help: "Total number of imported spreadsheet rows by result",
		},
		[]string{"result"},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
	)
)

// Middleware собирает метрики HTTP запросов echo.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			activeConnections.Inc()
			defer activeConnections.Dec()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)

			httpRequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
			httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

// Handler отдает метрики в формате Prometheus.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}

func RecordLeadCreated() {
	leadsCreated.Inc()
}

func RecordStatusChange(from, to string) {
	leadMoves.WithLabelValues(from, to).Inc()
}

// RecordImportRow учитывает строку импорта; result равен "created" или "failed".
func RecordImportRow(result string) {
	importRows.WithLabelValues(result).Inc()
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
