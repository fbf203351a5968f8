package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/hlog"
)

// spaHandler serves the bundled frontend following the SPA pattern: requests
// resolving to a real file in the static directory are served directly, and
// everything else falls back to the index page so client-side routing works.
type spaHandler struct {
	staticPath string
	indexPath  string
	fileServer http.Handler
}

func NewSpaHandler(staticPath string, indexPath string) *spaHandler {
	return &spaHandler{
		staticPath: staticPath,
		indexPath:  filepath.Join(staticPath, indexPath),
		fileServer: http.FileServer(http.Dir(staticPath)),
	}
}

func (h *spaHandler) SetFileServer(handler http.Handler) *spaHandler {
	h.fileServer = handler

	return h
}

func (h *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// get the absolute path to prevent directory traversal
	path, err := filepath.Abs(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	path = filepath.Join(h.staticPath, path)

	// Only serve regular files directly; directories, symlinks and anything
	// missing fall back to the index page.
	stat, err := os.Lstat(path)
	if os.IsNotExist(err) || (err == nil && !stat.Mode().IsRegular()) || path == h.indexPath {
		hlog.FromRequest(r).Debug().Str("indexPath", h.indexPath).Msg("Trying to serve default page.")

		http.ServeFile(w, r, h.indexPath)

		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	hlog.FromRequest(r).Debug().Msgf("Trying to serve: '%s'", path)

	// Asset file names contain cache busters, so they may be cached for a
	// long time. The index file does not, hence the fallback above serves it
	// without this header.
	w.Header().Set("Cache-Control", "max-age=31536000")
	h.fileServer.ServeHTTP(w, r)
}
