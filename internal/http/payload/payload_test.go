package payload_test

import (
	"memoarc/internal/http/payload"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SignupRequest", func() {
	var req payload.SignupRequest

	BeforeEach(func() {
		req = payload.SignupRequest{
			Email:    "alice.b@gmail.com",
			Username: "alice",
			Password: "secret1",
		}
	})

	It("should accept a valid request", func() {
		Expect(req.Validate()).To(Succeed())
	})

	DescribeTable("invalid fields",
		func(mutate func(*payload.SignupRequest), field string) {
			mutate(&req)
			err := req.Validate()
			Expect(err).To(HaveOccurred())
			Expect(payload.FieldErrors(err)).To(HaveKey(field))
		},
		Entry("non gmail address", func(r *payload.SignupRequest) { r.Email = "alice@yahoo.com" }, "email"),
		Entry("missing email", func(r *payload.SignupRequest) { r.Email = "" }, "email"),
		Entry("short username", func(r *payload.SignupRequest) { r.Username = "al" }, "username"),
		Entry("long username", func(r *payload.SignupRequest) { r.Username = "abcdefghijk" }, "username"),
		Entry("short password", func(r *payload.SignupRequest) { r.Password = "12345" }, "password"),
		Entry("long password", func(r *payload.SignupRequest) { r.Password = strings.Repeat("p", 21) }, "password"),
		Entry("password of 20 emoji", func(r *payload.SignupRequest) { r.Password = strings.Repeat("😀", 20) }, "password"),
		Entry("password of 11 emoji", func(r *payload.SignupRequest) { r.Password = strings.Repeat("😀", 11) }, "password"),
		Entry("username of 6 emoji", func(r *payload.SignupRequest) { r.Username = strings.Repeat("😀", 6) }, "username"),
	)

	It("should accept boundary lengths", func() {
		req.Username = "abc"
		req.Password = strings.Repeat("p", 20)
		Expect(req.Validate()).To(Succeed())
	})

	It("should keep accepted multibyte passwords within bcrypt's limit", func() {
		req.Password = strings.Repeat("😀", 10)
		Expect(req.Validate()).To(Succeed())
		Expect(len(req.Password)).To(BeNumerically("<=", 72))

		req.Password = strings.Repeat("€", 20)
		Expect(req.Validate()).To(Succeed())
		Expect(len(req.Password)).To(Equal(60))
	})
})

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	newRequest := func(body string) *http.Request {
		if body == "" {
			return httptest.NewRequest(http.MethodPost, "/signup", nil)
		}
		return httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	}

	It("should decode and validate", func() {
		var out payload.SignupRequest
		err := dv.DecodeJSONPayload(newRequest(`{"email":"a.b@gmail.com","username":"alice","password":"secret1"}`), &out)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Username).To(Equal("alice"))
	})

	It("should surface field errors", func() {
		var out payload.SignupRequest
		err := dv.DecodeJSONPayload(newRequest(`{"email":"a@b.com","username":"alice","password":"secret1"}`), &out)
		Expect(err).To(HaveOccurred())
		Expect(payload.FieldErrors(err)).To(HaveKey("email"))
	})

	It("should reject unknown fields", func() {
		var out payload.ShareRequest
		err := dv.DecodeJSONPayload(newRequest(`{"share":true,"extra":1}`), &out)
		Expect(err).To(HaveOccurred())
		Expect(payload.FieldErrors(err)).To(BeNil())
	})

	It("should reject an empty body", func() {
		var out payload.ShareRequest
		Expect(dv.DecodeJSONPayload(newRequest(""), &out)).To(MatchError(payload.ErrEmptyBody))
	})

	It("should skip validation for plain payloads", func() {
		var out payload.CreateContentRequest
		err := dv.DecodeJSONPayload(newRequest(`{"link":"not a url"}`), &out)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.ToMessage().Link).To(Equal("not a url"))
	})

	It("should require a content id for deletes", func() {
		var out payload.DeleteContentRequest
		err := dv.DecodeJSONPayload(newRequest(`{"contentId":""}`), &out)
		Expect(payload.FieldErrors(err)).To(HaveKey("contentId"))
	})
})
