package service

import (
	"fmt"
	"time"

	"hawaii-climate-server/internal/modules/climate/repository"
	"hawaii-climate-server/internal/modules/climate/types"
)

const dateLayout = "2006-01-02"

// trailingWindowDays spans the "most recent year" of observations, measured
// back from the latest date in the dataset.
const trailingWindowDays = 365

// Service answers the climate queries against a read-only repository.
type Service struct {
	repository repository.ObservationRepository
}

func New(repository repository.ObservationRepository) *Service {
	return &Service{repository: repository}
}

// TemperatureStats returns min/avg/max tobs over the validated range.
// Returns ErrNoMatch when no observation falls inside it.
func (s *Service) TemperatureStats(r DateRange) (types.TemperatureStats, error) {
	stats, ok, err := s.repository.TemperatureStats(r.Start, r.End)
	if err != nil {
		return types.TemperatureStats{}, err
	}
	if !ok {
		return types.TemperatureStats{}, ErrNoMatch
	}
	return stats, nil
}

// PrecipitationSeries maps each date in the trailing window to its
// precipitation value. When several stations report the same date, the
// later-fetched row wins; the series keeps one entry per date.
func (s *Service) PrecipitationSeries() (types.PrecipitationSeries, error) {
	since, err := s.trailingWindowStart()
	if err != nil {
		return nil, err
	}
	pairs, err := s.repository.DatePrcpSince(since)
	if err != nil {
		return nil, err
	}
	series := make(types.PrecipitationSeries, len(pairs))
	for _, p := range pairs {
		series[p.Date] = p.Prcp
	}
	return series, nil
}

// RecentTemperatures returns every tobs reading in the trailing window, in
// repository fetch order, nulls included.
func (s *Service) RecentTemperatures() ([]*float64, error) {
	since, err := s.trailingWindowStart()
	if err != nil {
		return nil, err
	}
	return s.repository.TobsSince(since)
}

// Stations lists the distinct station identifiers in the dataset.
func (s *Service) Stations() ([]string, error) {
	return s.repository.DistinctStations()
}

// trailingWindowStart computes latest − 365 calendar days. Calendar
// subtraction, not a duration: the window start lands on the same
// day-of-month a year earlier except across leap days.
func (s *Service) trailingWindowStart() (string, error) {
	latest, err := s.repository.MaxDate()
	if err != nil {
		return "", err
	}
	t, err := time.Parse(dateLayout, latest)
	if err != nil {
		return "", fmt.Errorf("parse latest date %q: %w", latest, err)
	}
	return t.AddDate(0, 0, -trailingWindowDays).Format(dateLayout), nil
}
