package metrics_test

import (
	"io"
	"memoarc/internal/metrics"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Collectors", func() {
	var collectors *metrics.Collectors

	BeforeEach(func() {
		collectors = metrics.New()
	})

	scrape := func() string {
		rec := httptest.NewRecorder()
		collectors.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))
		body, err := io.ReadAll(rec.Body)
		Expect(err).NotTo(HaveOccurred())
		return string(body)
	}

	It("should expose observed http requests", func() {
		collectors.ObserveHTTPRequest(http.MethodGet, "GET /content", http.StatusOK, 20*time.Millisecond)
		collectors.ObserveHTTPRequest(http.MethodGet, "GET /content", http.StatusOK, 30*time.Millisecond)

		body := scrape()
		Expect(body).To(ContainSubstring(`http_requests_total{code="200",method="GET",route="GET /content"} 2`))
		Expect(body).To(ContainSubstring(`http_request_duration_seconds_count{method="GET",route="GET /content"} 2`))
	})

	It("should expose preview outcomes", func() {
		collectors.PreviewOutcome("fallback")

		Expect(scrape()).To(ContainSubstring(`preview_outcomes_total{outcome="fallback"} 1`))
	})

	It("should keep registries independent", func() {
		collectors.PreviewOutcome("extracted")

		other := metrics.New()
		rec := httptest.NewRecorder()
		other.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		Expect(rec.Body.String()).NotTo(ContainSubstring("preview_outcomes_total{"))
	})
})
