package httpclient

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mystore/store-client/internal/metrics"
)

// NewHTTPClient returns an *http.Client whose transport reports request
// counts, latencies and in-flight requests to Prometheus.
func NewHTTPClient(timeout time.Duration) *http.Client {
	var rt http.RoundTripper = http.DefaultTransport
	rt = promhttp.InstrumentRoundTripperDuration(metrics.APIRequestDuration, rt)
	rt = promhttp.InstrumentRoundTripperCounter(metrics.APIRequestsTotal, rt)
	rt = promhttp.InstrumentRoundTripperInFlight(metrics.APIRequestsInFlight, rt)

	return &http.Client{
		Timeout:   timeout,
		Transport: rt,
	}
}
