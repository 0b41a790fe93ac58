package metrics

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readHeaderTimeout = 5 * time.Second

// NewServer returns an HTTP server exposing the default registry on
// /metrics at listenAddr. The caller runs and shuts it down.
func NewServer(listenAddr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              listenAddr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// ListenAndServe runs server until it is closed. A closed server isn't an
// error.
func ListenAndServe(server *http.Server) error {
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "metrics server on %s failed", server.Addr)
	}
	return nil
}
