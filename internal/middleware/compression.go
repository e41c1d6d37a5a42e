package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips JSON responses for clients that accept it. Rendered reports are
// skipped since PDF and XLSX bodies are already compressed, and /metrics is skipped
// because the Prometheus handler negotiates its own encoding.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.BestSpeed,
		gzip.WithExcludedPaths([]string{"/metrics"}),
		gzip.WithExcludedPathsRegexs([]string{`/report$`}),
		gzip.WithExcludedExtensions([]string{".pdf", ".xlsx", ".png"}),
	)
}
