package controller

import (
	"net/http"

	"hawaii-climate-server/internal/modules/climate/service"
)

type ClimateController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type climateControllerImpl struct {
	service *service.Service
}

func NewClimateController(service *service.Service) ClimateController {
	return &climateControllerImpl{service: service}
}

// RegisterRoutes mounts the climate API. The /api/v1.0 path literals are a
// compatibility surface; existing clients depend on them verbatim. The
// literal routes win over the {start} wildcard by ServeMux precedence.
func (c *climateControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", c.handleWelcome)
	mux.HandleFunc("GET /api/v1.0/precipitation", c.handlePrecipitation)
	mux.HandleFunc("GET /api/v1.0/stations", c.handleStations)
	mux.HandleFunc("GET /api/v1.0/tobs", c.handleTobs)
	mux.HandleFunc("GET /api/v1.0/{start}", c.handleTemperatureOpenRange)
	mux.HandleFunc("GET /api/v1.0/{start}/{end}", c.handleTemperatureClosedRange)
}
