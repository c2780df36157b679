package perf

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{
	"timestamp", "name", "scenario", "engine", "threads", "iterations",
	"message_size", "buffer_size", "console", "total_ms", "logs_per_second",
	"min_us", "median_us", "p95_us", "p99_us", "max_us", "heap_kb",
}

// AppendCSV appends one result row to path, writing the header first
// when the file does not exist yet.
func AppendCSV(path string, cfg Config, res Result) error {
	_, statErr := os.Stat(path)
	fresh := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(csvHeader); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Write(csvRow(cfg, res)); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func csvRow(cfg Config, res Result) []string {
	return []string{
		time.Now().Format("2006-01-02 15:04:05"),
		cfg.Name,
		res.Scenario,
		res.Engine,
		strconv.Itoa(cfg.Threads),
		strconv.Itoa(cfg.Iterations),
		cfg.MessageSize,
		strconv.Itoa(cfg.BufferSize),
		strconv.FormatBool(cfg.Console),
		formatMillis(res.Elapsed),
		strconv.FormatFloat(res.LogsPerSecond, 'f', 2, 64),
		formatMicros(res.Latency.Min),
		formatMicros(res.Latency.Median),
		formatMicros(res.Latency.P95),
		formatMicros(res.Latency.P99),
		formatMicros(res.Latency.Max),
		strconv.FormatUint(res.HeapKB, 10),
	}
}

func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 2, 64)
}

func formatMicros(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Microsecond), 'f', 2, 64)
}
