package handler

import (
	"context"
	"mime"
	"net/http"

	"school-api/internal/middleware"
	"school-api/internal/model"
	"school-api/pkg/apierror"
)

const maxFormBytes = 1 << 20

type authenticator interface {
	Authenticate(ctx context.Context, username string, password string) (model.TokenResponse, error)
}

type AuthHandler struct {
	service authenticator
}

func NewAuthHandler(service authenticator) *AuthHandler {
	return &AuthHandler{service: service}
}

// Token implements the OAuth2 password grant: a form-encoded username and
// password in, a bearer token out.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	if err := parseForm(r); err != nil {
		writeError(w, apierror.BadRequest("invalid form body", err.Error()))
		return
	}

	tokens, err := h.service.Authenticate(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeSuccess(w, http.StatusOK, tokens)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("not authenticated"))
		return
	}

	writeSuccess(w, http.StatusOK, identity)
}

func parseForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(maxFormBytes)
	}
	return r.ParseForm()
}
