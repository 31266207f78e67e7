package handler

import "net/http"

// RegisterRoutes mounts every endpoint on mux. Account, content and share
// routes go through auth; health, signup, signin, preview and metrics do not.
func (h *BookmarkHandler) RegisterRoutes(mux *http.ServeMux, auth Authenticator, metrics http.Handler) {
	mux.HandleFunc(Health, h.HandleHealth)
	mux.HandleFunc(Signup, h.HandleSignup)
	mux.HandleFunc(Signin, h.HandleSignin)
	mux.HandleFunc(Preview, h.HandlePreview)
	mux.Handle(Metrics, metrics)

	mux.HandleFunc(Me, auth.Authenticate(h.HandleMe))
	mux.HandleFunc(CreateContent, auth.Authenticate(h.HandleCreateContent))
	mux.HandleFunc(ViewContent, auth.Authenticate(h.HandleViewContent))
	mux.HandleFunc(DeleteContent, auth.Authenticate(h.HandleDeleteContent))
	mux.HandleFunc(ShareContent, auth.Authenticate(h.HandleShare))
	mux.HandleFunc(ShareLink, auth.Authenticate(h.HandleShareLink))
}
