package perf

import (
	"fmt"
	"io"
	"time"
)

// Print writes one result block to w.
func Print(w io.Writer, title string, cfg Config, res Result) {
	fmt.Fprintf(w, "========================= %s =========================\n", title)
	fmt.Fprintf(w, "Name:            %s\n", cfg.Name)
	fmt.Fprintf(w, "Engine:          %s\n", res.Engine)
	fmt.Fprintf(w, "Threads:         %d\n", cfg.Threads)
	fmt.Fprintf(w, "Total Logs:      %d\n", res.Logs)
	fmt.Fprintf(w, "Message Size:    %s\n", cfg.MessageSize)
	fmt.Fprintf(w, "Buffer Size:     %d\n", cfg.BufferSize)
	fmt.Fprintf(w, "Console Output:  %v\n", cfg.Console)
	fmt.Fprintf(w, "Total Time:      %.2f ms\n", float64(res.Elapsed)/float64(time.Millisecond))
	fmt.Fprintf(w, "Logs Per Second: %.0f\n", res.LogsPerSecond)
	if res.Latency.Sampled {
		fmt.Fprintf(w, "Latency (us):\n")
		fmt.Fprintf(w, "  Min:             %.2f\n", micros(res.Latency.Min))
		fmt.Fprintf(w, "  Median:          %.2f\n", micros(res.Latency.Median))
		fmt.Fprintf(w, "  95th Percentile: %.2f\n", micros(res.Latency.P95))
		fmt.Fprintf(w, "  99th Percentile: %.2f\n", micros(res.Latency.P99))
		fmt.Fprintf(w, "  Max:             %.2f\n", micros(res.Latency.Max))
	}
	fmt.Fprintf(w, "Heap:            %d KB\n", res.HeapKB)
	fmt.Fprintln(w, "=======================================================================")
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}
