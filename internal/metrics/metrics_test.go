package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsByRouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/leads/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/leads/:id", "204"))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads/"+id, nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/leads/:id", "204"))
	assert.Equal(t, before+2, after)
}

func TestMiddleware_RecordsHandlerErrors(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/boom", "418")))
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(importRows.WithLabelValues("failed"))

	RecordImportRow("failed")
	RecordLeadCreated()
	RecordStatusChange("novo", "ganho")

	assert.Equal(t, before+1, testutil.ToFloat64(importRows.WithLabelValues("failed")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(leadMoves.WithLabelValues("novo", "ganho")), 1.0)
}
