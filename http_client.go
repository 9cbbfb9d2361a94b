package main

import (
	"net/http"
	"time"
)

const defaultUpstreamTimeout = 60 * time.Second

// newUpstreamHTTPClient builds the HTTP client both model SDKs run through.
// The timeout bounds an entire upstream call, so a hung model request fails
// instead of pinning the handler forever.
func newUpstreamHTTPClient(seconds int) *http.Client {
	timeout := defaultUpstreamTimeout
	if seconds > 0 {
		timeout = time.Duration(seconds) * time.Second
	}
	return &http.Client{Timeout: timeout}
}
