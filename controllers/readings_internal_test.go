package controllers

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Iliketoeatsalmon/WiMaRC/models"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestWriteReadingsCSV_ReportsWriteFailure(t *testing.T) {
	temp := 28.5
	readings := []models.SensorReading{{
		ID:             "reading-1",
		StationID:      "station-001",
		Timestamp:      time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC),
		AirTemperature: &temp,
	}}

	if err := writeReadingsCSV(failingWriter{}, readings); err == nil {
		t.Fatal("expected error from failing writer")
	}
}

func TestWriteReadingsCSV_Success(t *testing.T) {
	temp := 28.5
	readings := []models.SensorReading{{
		ID:             "reading-1",
		StationID:      "station-001",
		Timestamp:      time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC),
		AirTemperature: &temp,
	}}

	var buf bytes.Buffer
	if err := writeReadingsCSV(&buf, readings); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv lines = %d, want header + 1 row", len(lines))
	}
	if !strings.Contains(lines[1], "28.50") {
		t.Errorf("row = %q, want air temperature 28.50", lines[1])
	}
}
