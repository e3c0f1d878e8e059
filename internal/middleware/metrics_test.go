package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	router := gin.New()
	router.Use(Metrics())
	router.GET("/api/v1/admin/waitlist/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/waitlist/entry-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect metrics: %v", err)
	}

	found := make(map[string]bool)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			found[m.Name] = true

			if m.Name != "http.server.requests" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("expected int64 sum for request counter, got %T", m.Data)
			}
			if len(sum.DataPoints) != 1 {
				t.Fatalf("expected 1 data point, got %d", len(sum.DataPoints))
			}
			dp := sum.DataPoints[0]
			if dp.Value != 1 {
				t.Errorf("expected counter value 1, got %d", dp.Value)
			}
			route, _ := dp.Attributes.Value("http.route")
			if route.AsString() != "/api/v1/admin/waitlist/:id" {
				t.Errorf("expected the route template attribute, got %q", route.AsString())
			}
			status, _ := dp.Attributes.Value("http.response.status_code")
			if status.AsInt64() != http.StatusOK {
				t.Errorf("expected status attribute 200, got %d", status.AsInt64())
			}
		}
	}

	if !found["http.server.requests"] {
		t.Error("request counter was not recorded")
	}
	if !found["http.server.duration"] {
		t.Error("duration histogram was not recorded")
	}
}

func TestMetricsUnmatchedRoute(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	router := gin.New()
	router.Use(Metrics())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect metrics: %v", err)
	}

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != "http.server.requests" {
				continue
			}
			sum := m.Data.(metricdata.Sum[int64])
			route, _ := sum.DataPoints[0].Attributes.Value("http.route")
			if route.AsString() != "unmatched" {
				t.Errorf("expected unmatched route label, got %q", route.AsString())
			}
			return
		}
	}
	t.Error("request counter was not recorded")
}
