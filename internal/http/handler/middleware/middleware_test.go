package middleware_test

import (
	"memoarc/internal/http/handler/middleware"
	"memoarc/internal/http/handler/middleware/fake"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RequestIDMiddleware", func() {
	var (
		w         *httptest.ResponseRecorder
		req       *http.Request
		requestID string
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	})

	JustBeforeEach(func() {
		middleware.NewRequestIDMiddleware().RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID = middleware.RequestIDFromContext(r.Context())
		})).ServeHTTP(w, req)
	})

	It("should generate an id and echo it", func() {
		Expect(requestID).NotTo(BeEmpty())
		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(requestID))
	})

	When("the caller sends an id", func() {
		BeforeEach(func() {
			req.Header.Set(middleware.RequestIDHeader, "caller-id")
		})

		It("should keep it", func() {
			Expect(requestID).To(Equal("caller-id"))
		})
	})
})

var _ = Describe("LoggingMiddleware", func() {
	It("should pass the response through", func() {
		w := httptest.NewRecorder()
		middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(w.Code).To(Equal(http.StatusTeapot))
	})
})

var _ = Describe("MetricsMiddleware", func() {
	var (
		fakeObserver *fake.RequestObserver
		mux          *http.ServeMux
		w            *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		fakeObserver = new(fake.RequestObserver)
		mux = http.NewServeMux()
		mux.HandleFunc("GET /content/shareLink/{shareLink}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		w = httptest.NewRecorder()
	})

	It("should observe the matched route and status", func() {
		middleware.NewMetricsMiddleware(fakeObserver).Metrics(mux).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/content/shareLink/abc", nil))

		Expect(fakeObserver.ObserveHTTPRequestCallCount()).To(Equal(1))
		method, route, code, _ := fakeObserver.ObserveHTTPRequestArgsForCall(0)
		Expect(method).To(Equal(http.MethodGet))
		Expect(route).To(Equal("GET /content/shareLink/{shareLink}"))
		Expect(code).To(Equal(http.StatusNotFound))
	})

	It("should label unmatched requests", func() {
		middleware.NewMetricsMiddleware(fakeObserver).Metrics(mux).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		_, route, code, _ := fakeObserver.ObserveHTTPRequestArgsForCall(0)
		Expect(route).To(Equal("unmatched"))
		Expect(code).To(Equal(http.StatusNotFound))
	})
})

var _ = Describe("CORSMiddleware", func() {
	var (
		nextCalled bool
		handler    http.Handler
		w          *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		nextCalled = false
		w = httptest.NewRecorder()
		handler = middleware.NewCORSMiddleware("").CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		}))
	})

	It("should answer preflight requests", func() {
		req := httptest.NewRequest(http.MethodOptions, "/content/delete", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
		req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")
		handler.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		Expect(w.Header().Get("Access-Control-Allow-Methods")).To(Equal(http.MethodDelete))
		Expect(strings.ToLower(w.Header().Get("Access-Control-Allow-Headers"))).To(ContainSubstring("authorization"))
		Expect(nextCalled).To(BeFalse())
	})

	It("should decorate regular requests", func() {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://app.example.com")
		handler.ServeHTTP(w, req)

		Expect(nextCalled).To(BeTrue())
		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		Expect(strings.ToLower(w.Header().Get("Access-Control-Expose-Headers"))).To(Equal(strings.ToLower(middleware.RequestIDHeader)))
	})

	It("should restrict to a configured origin", func() {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://elsewhere.example.com")
		middleware.NewCORSMiddleware("https://app.example.com").CORS(http.NotFoundHandler()).ServeHTTP(w, req)

		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
	})
})
