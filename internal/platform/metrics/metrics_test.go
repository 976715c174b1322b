package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zookeepr-api/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/animals/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/animals/"+id, nil))
	}

	got := testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/api/animals/{id}", "404"))
	gt.Value(t, got).Equal(float64(3))
}

func TestHandler_ExposesAnimalsCollectors(t *testing.T) {
	m := metrics.New()
	m.AnimalsCreated.Inc()
	m.AnimalsRecords.Set(4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	gt.Bool(t, strings.Contains(body, "animals_created_total 1")).True()
	gt.Bool(t, strings.Contains(body, "animals_records 4")).True()
}
