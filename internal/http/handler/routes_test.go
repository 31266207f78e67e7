package handler_test

import (
	"encoding/json"
	"errors"
	"memoarc/internal/http/handler"
	"memoarc/internal/http/handler/fake"
	"memoarc/internal/http/handler/middleware"
	middlewarefake "memoarc/internal/http/handler/middleware/fake"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RegisterRoutes", func() {
	var (
		mux          *http.ServeMux
		fakeService  *fake.BookmarkService
		fakeVerifier *middlewarefake.TokenVerifier
		w            *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()
		fakeService = new(fake.BookmarkService)
		fakeVerifier = new(middlewarefake.TokenVerifier)
		fakeVerifier.IdentityReturns("", errors.New("signature is invalid"))
		w = httptest.NewRecorder()

		bh := handler.NewBookmarkHandler(logger, new(fake.RequestValidator), fakeService, new(fake.PreviewService), "preview-v1")
		mux = http.NewServeMux()
		bh.RegisterRoutes(mux, middleware.NewAuthMiddleware(logger, fakeVerifier), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	})

	serve := func(method, target, authorization string) map[string]string {
		req := httptest.NewRequest(method, target, strings.NewReader(`{}`))
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		mux.ServeHTTP(w, req)

		body := map[string]string{}
		if w.Code == http.StatusUnauthorized {
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		}
		return body
	}

	DescribeTable("authenticated routes without a token",
		func(method, target string) {
			body := serve(method, target, "")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(body["message"]).To(Equal("Unauthorized"))
			Expect(fakeService.Invocations()).To(BeEmpty())
		},
		Entry("me", http.MethodGet, "/me"),
		Entry("create content", http.MethodPost, "/content/create"),
		Entry("view content", http.MethodGet, "/content/view"),
		Entry("delete content", http.MethodDelete, "/content/delete"),
		Entry("share", http.MethodPost, "/content/share"),
		Entry("share link", http.MethodGet, "/content/shareLink/abcdefghij"),
	)

	DescribeTable("authenticated routes with a bad token",
		func(method, target string) {
			body := serve(method, target, "Bearer forged")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(body["message"]).To(Equal("Invalid token"))
		},
		Entry("me", http.MethodGet, "/me"),
		Entry("view content", http.MethodGet, "/content/view"),
		Entry("share link", http.MethodGet, "/content/shareLink/abcdefghij"),
	)

	DescribeTable("public routes",
		func(method, target string) {
			serve(method, target, "")
			Expect(w.Code).NotTo(Equal(http.StatusUnauthorized))
			Expect(fakeVerifier.IdentityCallCount()).To(Equal(0))
		},
		Entry("healthz", http.MethodGet, "/healthz"),
		Entry("signup", http.MethodPost, "/signup"),
		Entry("signin", http.MethodPost, "/signin"),
		Entry("preview", http.MethodGet, "/preview?url=https://example.com"),
		Entry("metrics", http.MethodGet, "/metrics"),
	)
})
