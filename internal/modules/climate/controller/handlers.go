package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"hawaii-climate-server/internal/modules/climate/service"
	"hawaii-climate-server/internal/utils"
)

// Validation and no-match bodies keep the original service's wording and are
// served with the success status. Clients of the old API read the body, not
// the status code, so a 4xx here would be a breaking change.
const (
	badStartFmt = "Your search of '%s' is not in the correct format.<br/>" +
		"Please, search for a start date in the form yyyy-mm-dd (year-month-day)."
	noMatchStartFmt = "Your search of %s did not match any records. " +
		"Please, search for an earlier date.<br/>"
	badRangeFmt = "Your search beginning with '%s' and ending with '%s' is not in the correct format.<br/>" +
		"Please, verify that both start and end dates are in the form yyyy-mm-dd (year-month-day)."
	noMatchRangeFmt = "Your search beginning with '%s' and ending with '%s' did not match any records. " +
		"Please, search for a different date range.<br/>"
)

const welcomeBody = "Available Routes:<br/>" +
	"/api/v1.0/precipitation<br/>" +
	"/api/v1.0/stations<br/>" +
	"/api/v1.0/tobs<br/>" +
	"/api/v1.0/<start><br/>" +
	"/api/v1.0/<start>/<end>"

func (c *climateControllerImpl) handleWelcome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(welcomeBody)); err != nil {
		slog.Error("welcome: write response failed", "error", err)
	}
}

func (c *climateControllerImpl) handlePrecipitation(w http.ResponseWriter, r *http.Request) {
	series, err := c.service.PrecipitationSeries()
	if err != nil {
		slog.Error("precipitation query failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load precipitation")
		return
	}
	utils.WriteJSON(w, http.StatusOK, series)
}

func (c *climateControllerImpl) handleStations(w http.ResponseWriter, r *http.Request) {
	stations, err := c.service.Stations()
	if err != nil {
		slog.Error("stations query failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load stations")
		return
	}
	if stations == nil {
		stations = []string{}
	}
	utils.WriteJSON(w, http.StatusOK, stations)
}

func (c *climateControllerImpl) handleTobs(w http.ResponseWriter, r *http.Request) {
	readings, err := c.service.RecentTemperatures()
	if err != nil {
		slog.Error("tobs query failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load temperature observations")
		return
	}
	if readings == nil {
		readings = []*float64{}
	}
	utils.WriteJSON(w, http.StatusOK, readings)
}

func (c *climateControllerImpl) handleTemperatureOpenRange(w http.ResponseWriter, r *http.Request) {
	start := r.PathValue("start")

	dr, err := service.ValidateRange(start, "")
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		utils.WriteText(w, http.StatusOK, fmt.Sprintf(badStartFmt, start))
		return
	}

	stats, err := c.service.TemperatureStats(dr)
	if errors.Is(err, service.ErrNoMatch) {
		utils.WriteText(w, http.StatusOK, fmt.Sprintf(noMatchStartFmt, start))
		return
	}
	if err != nil {
		slog.Error("temperature query failed", "start", start, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load temperature stats")
		return
	}
	utils.WriteJSON(w, http.StatusOK, []float64{stats.Min, stats.Avg, stats.Max})
}

func (c *climateControllerImpl) handleTemperatureClosedRange(w http.ResponseWriter, r *http.Request) {
	start := r.PathValue("start")
	end := r.PathValue("end")

	dr, err := service.ValidateRange(start, end)
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		utils.WriteText(w, http.StatusOK, fmt.Sprintf(badRangeFmt, start, end))
		return
	}

	stats, err := c.service.TemperatureStats(dr)
	if errors.Is(err, service.ErrNoMatch) {
		utils.WriteText(w, http.StatusOK, fmt.Sprintf(noMatchRangeFmt, start, end))
		return
	}
	if err != nil {
		slog.Error("temperature query failed", "start", start, "end", end, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load temperature stats")
		return
	}
	utils.WriteJSON(w, http.StatusOK, []float64{stats.Min, stats.Avg, stats.Max})
}
