package repository

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// Minimal schema matching internal/migrate/sql/0001_measurements.sql for
// in-memory tests.
const testSchema = `
CREATE TABLE IF NOT EXISTS measurements (
  id      INTEGER PRIMARY KEY,
  station TEXT NOT NULL,
  date    TEXT NOT NULL,
  prcp    REAL,
  tobs    REAL,
  UNIQUE (station, date)
);
CREATE INDEX IF NOT EXISTS idx_measurements_date ON measurements(date);
CREATE INDEX IF NOT EXISTS idx_measurements_station ON measurements(station);
`

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if _, err := db.Exec(testSchema); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			t.Fatalf("close db: %v", closeErr)
		}
		t.Fatalf("exec schema: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Fatalf("close db: %v", closeErr)
		}
	})
	return db
}

func seed(t *testing.T, db *sql.DB, rows string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO measurements (station, date, prcp, tobs) VALUES ` + rows)
	if err != nil {
		t.Fatalf("insert measurements: %v", err)
	}
}

func TestMaxDate(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, `
		('USC00519397', '2017-08-21', 0.0, 81.0),
		('USC00519397', '2017-08-23', 0.08, 82.0),
		('USC00513117', '2017-08-22', 0.5, 80.0)
	`)
	repo := NewRepository(db)

	latest, err := repo.MaxDate()
	if err != nil {
		t.Fatalf("MaxDate: %v", err)
	}
	if latest != "2017-08-23" {
		t.Errorf("MaxDate = %q, want 2017-08-23", latest)
	}
}

func TestTemperatureStats_OpenRange(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, `
		('S1', '2010-01-01', NULL, 60.0),
		('S1', '2010-01-02', NULL, 70.0),
		('S1', '2010-01-03', NULL, 80.0)
	`)
	repo := NewRepository(db)

	stats, ok, err := repo.TemperatureStats("2010-01-02", "")
	if err != nil {
		t.Fatalf("TemperatureStats: %v", err)
	}
	if !ok {
		t.Fatal("TemperatureStats: ok = false, want true")
	}
	if stats.Min != 70.0 || stats.Avg != 75.0 || stats.Max != 80.0 {
		t.Errorf("stats = %+v, want {70 75 80}", stats)
	}
}

func TestTemperatureStats_ClosedRangeInclusive(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, `
		('S1', '2010-01-01', NULL, 60.0),
		('S1', '2010-01-02', NULL, 70.0),
		('S1', '2010-01-03', NULL, 80.0),
		('S1', '2010-01-04', NULL, 90.0)
	`)
	repo := NewRepository(db)

	stats, ok, err := repo.TemperatureStats("2010-01-02", "2010-01-03")
	if err != nil {
		t.Fatalf("TemperatureStats: %v", err)
	}
	if !ok {
		t.Fatal("TemperatureStats: ok = false, want true")
	}
	// Both bounds inclusive: 70 and 80 qualify, 60 and 90 do not.
	if stats.Min != 70.0 || stats.Max != 80.0 {
		t.Errorf("stats = %+v, want min=70 max=80", stats)
	}
}

func TestTemperatureStats_NoQualifyingRows(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, `('S1', '2010-01-01', NULL, 60.0)`)
	repo := NewRepository(db)

	_, ok, err := repo.TemperatureStats("2020-01-01", "")
	if err != nil {
		t.Fatalf("TemperatureStats: %v", err)
	}
	if ok {
		t.Error("TemperatureStats: ok = true for empty range, want false")
	}
}

func TestTemperatureStats_NullTobsExcluded(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, `
		('S1', '2010-01-01', 0.1, NULL),
		('S1', '2010-01-02', 0.2, 70.0)
	`)
	repo := NewRepository(db)

	stats, ok, err := repo.TemperatureStats("2010-01-01", "")
	if err != nil {
		t.Fatalf("TemperatureStats: %v", err)
	}
	if !ok {
		t.Fatal("TemperatureStats: ok = false, want true")
	}
	// The NULL tobs row does not drag the average down.
	if stats.Min != 70.0 || stats.Avg != 70.0 || stats.Max != 70.0 {
		t.Errorf("stats = %+v, want {70 70 70}", stats)
	}
}

func TestTemperatureStats_OnlyNullTobsInRange(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, `('S1', '2010-01-01', 0.1, NULL)`)
	repo := NewRepository(db)

	_, ok, err := repo.TemperatureStats("2010-01-01", "")
	if err != nil {
		t.Fatalf("TemperatureStats: %v", err)
	}
	if ok {
		t.Error("TemperatureStats: ok = true when every tobs is NULL, want false")
	}
}

func TestDatePrcpSince(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, `
		('S1', '2017-07-31', 0.3, 80.0),
		('S1', '2017-08-01', 0.5, 81.0),
		('S2', '2017-08-01', 0.8, 79.0),
		('S1', '2017-08-02', NULL, 82.0)
	`)
	repo := NewRepository(db)

	pairs, err := repo.DatePrcpSince("2017-08-01")
	if err != nil {
		t.Fatalf("DatePrcpSince: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("DatePrcpSince: got %d pairs, want 3", len(pairs))
	}
	for _, p := range pairs {
		if p.Date < "2017-08-01" {
			t.Errorf("pair %q precedes the window start", p.Date)
		}
	}
	var nulls int
	for _, p := range pairs {
		if p.Prcp == nil {
			nulls++
		}
	}
	if nulls != 1 {
		t.Errorf("null prcp count = %d, want 1", nulls)
	}
}

func TestTobsSince_NullsIncluded(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, `
		('S1', '2017-08-01', 0.5, 81.0),
		('S1', '2017-08-02', 0.0, NULL),
		('S2', '2017-08-03', 0.1, 79.0),
		('S1', '2016-01-01', 0.2, 60.0)
	`)
	repo := NewRepository(db)

	tobs, err := repo.TobsSince("2017-08-01")
	if err != nil {
		t.Fatalf("TobsSince: %v", err)
	}
	if len(tobs) != 3 {
		t.Fatalf("TobsSince: got %d readings, want 3", len(tobs))
	}
	var nulls int
	for _, v := range tobs {
		if v == nil {
			nulls++
		}
	}
	if nulls != 1 {
		t.Errorf("null tobs count = %d, want 1", nulls)
	}
}

func TestDistinctStations(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, `
		('USC00519397', '2017-08-01', 0.5, 81.0),
		('USC00519397', '2017-08-02', 0.0, 80.0),
		('USC00519397', '2017-08-03', 0.1, 82.0),
		('USC00513117', '2017-08-01', 0.8, 79.0)
	`)
	repo := NewRepository(db)

	stations, err := repo.DistinctStations()
	if err != nil {
		t.Fatalf("DistinctStations: %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("DistinctStations: got %d, want 2 regardless of row count", len(stations))
	}
	seen := map[string]bool{}
	for _, s := range stations {
		seen[s] = true
	}
	if !seen["USC00519397"] || !seen["USC00513117"] {
		t.Errorf("stations = %v, want both identifiers present", stations)
	}
}

func TestDistinctStations_EmptyDataset(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	stations, err := repo.DistinctStations()
	if err != nil {
		t.Fatalf("DistinctStations: %v", err)
	}
	if len(stations) != 0 {
		t.Fatalf("DistinctStations: got %d, want 0", len(stations))
	}
}
