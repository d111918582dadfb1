package httpx

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

type taggingRoundTripper struct {
	userAgent string
	proxied   http.RoundTripper
}

func (t taggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", t.userAgent)
	return t.proxied.RoundTrip(req)
}

// NewClient returns an http.Client tagging every request with the given
// user agent.
func NewClient(userAgent string) *http.Client {
	return &http.Client{
		Transport: taggingRoundTripper{userAgent: userAgent, proxied: http.DefaultTransport},
		Timeout:   10 * time.Second,
	}
}

// LoggingRoundTripper logs every outbound request and response. Credential
// query parameters are obfuscated before logging.
type LoggingRoundTripper struct {
	Proxied http.RoundTripper
}

func (lrt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	slog.Info("outbound request", "method", req.Method, "url", Redact(req.URL))

	res, err := lrt.Proxied.RoundTrip(req)
	if err != nil {
		slog.Error("outbound request failed", "error", err.Error())
		return res, err
	}

	b := bytes.NewBuffer(make([]byte, 0))
	reader := io.TeeReader(res.Body, b)

	body, _ := io.ReadAll(reader)
	slog.Info("outbound response", "status", res.Status, "body", string(body))

	defer res.Body.Close()

	res.Body = io.NopCloser(b)

	return res, nil
}

// Redact renders a URL with its credential query parameters obfuscated.
func Redact(u *url.URL) string {
	q := u.Query()
	for _, p := range []string{"key", "signature", "client"} {
		if q.Has(p) {
			q.Set(p, "*****")
		}
	}

	r := *u
	r.RawQuery = q.Encode()
	return r.String()
}

// NewLoggingClient returns a tagged client which also logs every request.
func NewLoggingClient(userAgent string) *http.Client {
	return &http.Client{
		Transport: LoggingRoundTripper{
			Proxied: taggingRoundTripper{userAgent: userAgent, proxied: http.DefaultTransport},
		},
		Timeout: 10 * time.Second,
	}
}
