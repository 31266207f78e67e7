package middleware_test

import (
	"encoding/json"
	"errors"
	"memoarc/internal/http/handler/middleware"
	"memoarc/internal/http/handler/middleware/fake"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AuthMiddleware", func() {
	var (
		fakeVerifier *fake.TokenVerifier
		auth         *middleware.AuthMiddleware
		w            *httptest.ResponseRecorder
		req          *http.Request

		nextCalled bool
		identity   string
	)

	BeforeEach(func() {
		fakeVerifier = new(fake.TokenVerifier)
		fakeVerifier.IdentityReturns("user-1", nil)
		auth = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeVerifier)
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/me", nil)
		nextCalled = false
		identity = ""
	})

	JustBeforeEach(func() {
		auth.Authenticate(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			identity = middleware.IdentityFromContext(r.Context())
		})(w, req)
	})

	message := func() string {
		var body map[string]string
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		return body["message"]
	}

	When("the header is missing", func() {
		It("should return 401 Unauthorized", func() {
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(message()).To(Equal("Unauthorized"))
			Expect(nextCalled).To(BeFalse())
			Expect(fakeVerifier.IdentityCallCount()).To(Equal(0))
		})
	})

	When("a bearer token is sent", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer abc.def.ghi")
		})

		It("should strip the prefix and attach the identity", func() {
			Expect(nextCalled).To(BeTrue())
			Expect(identity).To(Equal("user-1"))
			Expect(fakeVerifier.IdentityArgsForCall(0)).To(Equal("abc.def.ghi"))
		})
	})

	When("a raw token is sent", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "abc.def.ghi")
		})

		It("should verify it as is", func() {
			Expect(nextCalled).To(BeTrue())
			Expect(fakeVerifier.IdentityArgsForCall(0)).To(Equal("abc.def.ghi"))
		})
	})

	When("the token does not verify", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer forged")
			fakeVerifier.IdentityReturns("", errors.New("signature is invalid"))
		})

		It("should return 401 Invalid token", func() {
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(message()).To(Equal("Invalid token"))
			Expect(nextCalled).To(BeFalse())
		})
	})

	When("the token carries no identity", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer empty")
			fakeVerifier.IdentityReturns("", nil)
		})

		It("should return 401 Invalid token", func() {
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(message()).To(Equal("Invalid token"))
		})
	})
})
