package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/matthieukhl/salesgen/internal/models"
)

// ErrMalformedRow is returned by ReadCSV for a row that does not parse
var ErrMalformedRow = errors.New("export: malformed row")

// WriteCSV writes a header row followed by one row per record
func WriteCSV(w io.Writer, records []models.SalesRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.CSVHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the records to path. The data goes to a temporary file
// next to path first and is renamed into place once complete, so path never
// holds a partial dataset.
func WriteFile(path string, records []models.SalesRecord) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := WriteCSV(tmp, records); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

// ReadFile loads a dataset written by WriteFile
func ReadFile(path string) ([]models.SalesRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses a header row and the records that follow it
func ReadCSV(r io.Reader) ([]models.SalesRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(models.CSVHeader)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, name := range models.CSVHeader {
		if header[i] != name {
			return nil, fmt.Errorf("header column %d is %q, want %q: %w", i+1, header[i], name, ErrMalformedRow)
		}
	}

	var records []models.SalesRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (models.SalesRecord, error) {
	var rec models.SalesRecord

	date, err := time.Parse(models.DateLayout, row[0])
	if err != nil {
		return rec, fmt.Errorf("date %q: %w", row[0], ErrMalformedRow)
	}
	weekday, ok := parseWeekday(row[8])
	if !ok {
		return rec, fmt.Errorf("day of week %q: %w", row[8], ErrMalformedRow)
	}

	ints := make([]int64, 0, 5)
	for _, col := range []int{5, 6, 7, 9, 10} {
		v, err := strconv.ParseInt(row[col], 10, 64)
		if err != nil {
			return rec, fmt.Errorf("%s %q: %w", models.CSVHeader[col], row[col], ErrMalformedRow)
		}
		ints = append(ints, v)
	}

	rec = models.SalesRecord{
		Date:       date,
		Region:     row[1],
		Person:     row[2],
		Product:    row[3],
		Category:   row[4],
		Quantity:   int(ints[0]),
		UnitPrice:  ints[1],
		TotalSales: ints[2],
		DayOfWeek:  weekday,
		Month:      int(ints[3]),
		Quarter:    int(ints[4]),
	}
	return rec, nil
}

func parseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}
