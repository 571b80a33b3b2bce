package repository

import (
	"database/sql"
	_ "embed"
	"log/slog"

	"hawaii-climate-server/internal/modules/climate/types"
)

//go:embed sql/max-date.sql
var maxDateSQL string

//go:embed sql/temperature-stats.sql
var temperatureStatsSQL string

//go:embed sql/temperature-stats-range.sql
var temperatureStatsRangeSQL string

//go:embed sql/date-prcp-since.sql
var datePrcpSinceSQL string

//go:embed sql/tobs-since.sql
var tobsSinceSQL string

//go:embed sql/distinct-stations.sql
var distinctStationsSQL string

// ObservationRepository is read-only access to the measurement dataset.
type ObservationRepository interface {
	// MaxDate returns the most recent date in the dataset. The dataset is
	// loaded before the server starts and is never empty in normal operation.
	MaxDate() (string, error)
	// TemperatureStats aggregates tobs over date >= start and, when end is
	// non-empty, date <= end. ok is false when no row qualifies (SQL MIN/AVG/MAX
	// over zero rows yield NULL, which is not the same as zero values).
	TemperatureStats(start, end string) (stats types.TemperatureStats, ok bool, err error)
	// DatePrcpSince returns every (date, prcp) pair with date >= since, in
	// fetch order. Callers rely on that order for duplicate-date resolution.
	DatePrcpSince(since string) ([]types.DatePrcp, error)
	// TobsSince returns every tobs value with date >= since, nulls included.
	TobsSince(since string) ([]*float64, error)
	// DistinctStations returns each station identifier once.
	DistinctStations() ([]string, error)
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) ObservationRepository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) MaxDate() (string, error) {
	var latest sql.NullString
	if err := r.db.QueryRow(maxDateSQL).Scan(&latest); err != nil {
		return "", err
	}
	// NULL only on an empty table, which the load step rules out; an empty
	// string surfaces that misconfiguration to the caller as a parse failure.
	return latest.String, nil
}

func (r *repositoryImpl) TemperatureStats(start, end string) (types.TemperatureStats, bool, error) {
	var min, avg, max sql.NullFloat64
	var err error
	if end == "" {
		err = r.db.QueryRow(temperatureStatsSQL, start).Scan(&min, &avg, &max)
	} else {
		err = r.db.QueryRow(temperatureStatsRangeSQL, start, end).Scan(&min, &avg, &max)
	}
	if err != nil {
		return types.TemperatureStats{}, false, err
	}
	if !min.Valid || !avg.Valid || !max.Valid {
		return types.TemperatureStats{}, false, nil
	}
	return types.TemperatureStats{Min: min.Float64, Avg: avg.Float64, Max: max.Float64}, true, nil
}

func (r *repositoryImpl) DatePrcpSince(since string) ([]types.DatePrcp, error) {
	rows, err := r.db.Query(datePrcpSinceSQL, since)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close date/prcp rows", "error", err)
		}
	}()
	var out []types.DatePrcp
	for rows.Next() {
		var p types.DatePrcp
		var prcp sql.NullFloat64
		if err := rows.Scan(&p.Date, &prcp); err != nil {
			return nil, err
		}
		if prcp.Valid {
			v := prcp.Float64
			p.Prcp = &v
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repositoryImpl) TobsSince(since string) ([]*float64, error) {
	rows, err := r.db.Query(tobsSinceSQL, since)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close tobs rows", "error", err)
		}
	}()
	var out []*float64
	for rows.Next() {
		var tobs sql.NullFloat64
		if err := rows.Scan(&tobs); err != nil {
			return nil, err
		}
		if tobs.Valid {
			v := tobs.Float64
			out = append(out, &v)
		} else {
			out = append(out, nil)
		}
	}
	return out, rows.Err()
}

func (r *repositoryImpl) DistinctStations() ([]string, error) {
	rows, err := r.db.Query(distinctStationsSQL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close stations rows", "error", err)
		}
	}()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
