package trace

import (
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
)

// Transport logs registry requests and responses through the logger found in
// the request context. Credentials are never logged.
type Transport struct {
	http.RoundTripper
	count atomic.Uint64
}

// NewTransport wraps base.
func NewTransport(base http.RoundTripper) *Transport {
	return &Transport{RoundTripper: base}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := t.count.Add(1) - 1
	logger := Logger(req.Context()).WithField("request", id)

	logger.Debugf("📤 %s %s\n%s", req.Method, req.URL.Redacted(), logHeader(req.Header))

	resp, err := t.RoundTripper.RoundTrip(req)
	switch {
	case err != nil:
		logger.Errorf("%s %s: %v", req.Method, req.URL.Redacted(), err)
	case resp == nil:
		logger.Errorf("%s %s: missing response", req.Method, req.URL.Redacted())
	default:
		logger.Debugf("📥 %s\n%s", resp.Status, logHeader(resp.Header))
	}
	return resp, err
}

func logHeader(header http.Header) string {
	if len(header) == 0 {
		return ""
	}

	headers := make([]string, 0, len(header))
	for k, v := range header {
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Set-Cookie") {
			v = []string{"<redacted>"}
		}
		headers = append(headers, fmt.Sprintf("%s: %s", k, strings.Join(v, ", ")))
	}
	return strings.Join(headers, "\n")
}
