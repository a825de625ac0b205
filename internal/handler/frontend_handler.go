package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const frontendMissingMessage = "School management API is running. No frontend build found."

// FrontendHandler serves a pre-built single page app when one exists on disk.
type FrontendHandler struct {
	root string
}

func NewFrontendHandler(root string) *FrontendHandler {
	return &FrontendHandler{root: strings.TrimSpace(root)}
}

func (h *FrontendHandler) available() bool {
	if h == nil || h.root == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(h.root, "index.html"))
	return err == nil && !info.IsDir()
}

func (h *FrontendHandler) Index(w http.ResponseWriter, r *http.Request) {
	if !h.available() {
		writeStatusMessage(w)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.root, "index.html"))
}

// Static serves files under <root>/static. Mount it with the /static/ prefix
// stripped.
func (h *FrontendHandler) Static() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.available() {
			writeStatusMessage(w)
			return
		}

		http.FileServer(noDirListing{http.Dir(filepath.Join(h.root, "static"))}).ServeHTTP(w, r)
	})
}

func writeStatusMessage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(frontendMissingMessage))
}

type noDirListing struct {
	fs http.FileSystem
}

func (n noDirListing) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, os.ErrNotExist
	}

	return f, nil
}
