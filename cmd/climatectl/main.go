package main

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hawaii-climate-server/internal/migrate"
	"hawaii-climate-server/internal/modules/climate/types"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	dbPath := os.Getenv("SQLITE_PATH")
	if dbPath == "" {
		dbPath = "data/hawaii.db"
	}
	dbPath = filepath.Clean(dbPath)

	conn, err := Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "db open: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			slog.Error("db close", "err", closeErr)
		}
	}()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "migrate":
		if err := migrate.Run(conn); err != nil {
			fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("migrations applied")
	case "load":
		if len(os.Args) < 3 {
			usage()
			os.Exit(1)
		}
		if err := migrate.Run(conn); err != nil {
			fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
			os.Exit(1)
		}
		n, err := loadCSV(conn, os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "load: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("loaded %d measurements\n", n)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <command>\n"+
		"  migrate       apply pending schema migrations\n"+
		"  load <csv>    load a station,date,prcp,tobs measurements CSV\n", os.Args[0])
}

// loadCSV bulk-loads a measurements CSV with a station,date,prcp,tobs header.
// Empty or NA numeric cells become NULL. Re-loading a file is idempotent:
// rows replace any existing (station, date) entry.
func loadCSV(db *sql.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("csv close", "err", closeErr)
		}
	}()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 4 {
		return 0, fmt.Errorf("unexpected header %v: want station,date,prcp,tobs", header)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(
		`INSERT OR REPLACE INTO measurements (station, date, prcp, tobs) VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, err
	}
	defer func() { _ = stmt.Close() }()

	n := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("record %d: %w", n+1, err)
		}
		obs := types.Observation{Station: rec[0], Date: rec[1]}
		obs.Prcp, err = parseNullable(rec[2])
		if err != nil {
			return 0, fmt.Errorf("record %d: prcp: %w", n+1, err)
		}
		obs.Tobs, err = parseNullable(rec[3])
		if err != nil {
			return 0, fmt.Errorf("record %d: tobs: %w", n+1, err)
		}
		if _, err := stmt.Exec(obs.Station, obs.Date, obs.Prcp, obs.Tobs); err != nil {
			return 0, fmt.Errorf("record %d: insert: %w", n+1, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

func parseNullable(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "na") {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func Open(dbPath string) (*sql.DB, error) {
	dsn, err := buildDSN(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return db, nil
}

func buildDSN(dbPath string) (string, error) {
	params := []string{
		"_foreign_keys=on",
		"_busy_timeout=5000",
		"_journal_mode=WAL",
	}

	if strings.HasPrefix(dbPath, "file:") {
		sep := "?"
		if strings.Contains(dbPath, "?") {
			sep = "&"
		}
		return dbPath + sep + strings.Join(params, "&"), nil
	}

	return fmt.Sprintf("file:%s?%s", dbPath, strings.Join(params, "&")), nil
}
