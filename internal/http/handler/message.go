package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
	Field   string      `json:"field,omitempty"`   // offending field of a conflict
	Details interface{} `json:"details,omitempty"` // per-field validation errors
}

type SigninResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Version string `json:"version"`
}
