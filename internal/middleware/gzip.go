package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
)

// gzipWriter подменяет Writer ответа на gzip-поток.
type gzipWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (g *gzipWriter) Write(b []byte) (int, error) {
	return g.zw.Write(b)
}

func (g *gzipWriter) WriteHeader(statusCode int) {
	// Content-Length исходного ответа больше не актуален
	g.Header().Del("Content-Length")
	g.ResponseWriter.WriteHeader(statusCode)
}

// WithGzip сжимает ответ, если клиент прислал Accept-Encoding: gzip.
func WithGzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzip.NewWriter(w)
		defer zw.Close()

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		next.ServeHTTP(&gzipWriter{ResponseWriter: w, zw: zw}, r)
	})
}
