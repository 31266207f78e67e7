package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

type CORSMiddleware struct {
	cors *cors.Cors
}

func NewCORSMiddleware(allowedOrigin string) *CORSMiddleware {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return &CORSMiddleware{
		cors: cors.New(cors.Options{
			AllowedOrigins: []string{allowedOrigin},
			AllowedMethods: []string{
				http.MethodGet,
				http.MethodHead,
				http.MethodPost,
				http.MethodPut,
				http.MethodPatch,
				http.MethodDelete,
			},
			AllowedHeaders:       []string{"*"},
			ExposedHeaders:       []string{RequestIDHeader},
			OptionsSuccessStatus: http.StatusNoContent,
		}),
	}
}

// CORS sets the cross-origin headers and answers preflight requests itself.
func (m *CORSMiddleware) CORS(next http.Handler) http.Handler {
	return m.cors.Handler(next)
}
