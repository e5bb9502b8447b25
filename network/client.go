// Package network provides the HTTP clients and fetchers used to retrieve hosting site pages.
package network

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Client is the shared HTTP client for plain TLS requests.
var Client = NewClient(DefaultTimeout, false)

// NewClient returns a client with the given timeout. When fingerprint is set the
// client negotiates TLS with a Chrome Client Hello instead of Go's own.
func NewClient(timeout time.Duration, fingerprint bool) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var rt http.RoundTripper = newTransport(timeout)
	if fingerprint {
		rt = &fingerprintTransport{timeout: timeout}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: rt,
	}
}

func newTransport(timeout time.Duration) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = timeout
	t.ExpectContinueTimeout = timeout
	return t
}
