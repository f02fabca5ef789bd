// Package middleware provides the HTTP middleware of the quote optimizer API.
package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// jobEventsPath matches the SSE stream, which must flush events as they happen.
const jobEventsPath = `^/api/optimize/jobs/[^/]+/events$`

// Compression gzips responses for clients that accept it. /metrics is left to
// promhttp, which negotiates its own encoding.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/metrics"}),
		gzip.WithExcludedPathsRegexs([]string{jobEventsPath}),
	)
}
