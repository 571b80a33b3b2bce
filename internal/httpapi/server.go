package httpapi

import (
	"net/http"

	"hawaii-climate-server/internal/config"
)

func NewServer(cfg config.Config, mux *http.ServeMux) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: requestID(requestMetrics(requestLogger(mux))),
	}
}
