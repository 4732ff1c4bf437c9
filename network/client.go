// Package network holds the HTTP client shared by the application.
package network

import (
	"net/http"
	"time"

	"github.com/safeplay-cli/safeplay/constant"
)

// UserAgent is sent with every request made through Client.
var UserAgent = constant.App + "/" + constant.Version

// Client is the HTTP client used for outgoing requests.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: &userAgentTransport{base: newTransport()},
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 15 * time.Second
	return t
}

type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", UserAgent)
	return t.base.RoundTrip(req)
}
