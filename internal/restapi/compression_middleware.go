package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// applyGzipMiddleware wraps a handler with gzip compression
func applyGzipMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}
