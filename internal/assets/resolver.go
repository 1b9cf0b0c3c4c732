// Package assets resolves the site-relative asset paths stored on catalog
// documents (/assets/Productos/x.jpg) against the public site URL. The
// store never validates that a path exists; resolution is for admin-UI
// preview only.
package assets

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Resolver turns site-relative paths into absolute URLs and offers a
// non-blocking reachability probe for previews.
type Resolver struct {
	siteURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewResolver creates a Resolver for the given base site URL.
func NewResolver(siteURL string, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		siteURL: strings.TrimSuffix(siteURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
		logger:  logger,
	}
}

// AbsoluteURL converts a site-relative path into an absolute URL. Paths
// that are already absolute URLs pass through unchanged; empty paths
// resolve to the empty string.
func (r *Resolver) AbsoluteURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return r.siteURL + path
	}
	return r.siteURL + "/" + path
}

// CheckAsync probes the resolved URL in the background and logs a warning
// when it is unreachable. It is fire-and-forget: form submissions must
// never block on, or fail because of, a preview check.
func (r *Resolver) CheckAsync(path string) {
	url := r.AbsoluteURL(path)
	if url == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
		if err != nil {
			r.logger.Warn("asset preview check skipped", zap.String("url", url), zap.Error(err))
			return
		}
		resp, err := r.client.Do(req)
		if err != nil {
			r.logger.Warn("asset path unreachable", zap.String("url", url), zap.Error(err))
			return
		}
		resp.Body.Close()
		if resp.StatusCode >= http.StatusBadRequest {
			r.logger.Warn("asset path returned error status",
				zap.String("url", url), zap.Int("status", resp.StatusCode))
		}
	}()
}
