package perf

import (
	"context"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// burstGap is the pause between bursts in a stress run.
const burstGap = 50 * time.Millisecond

// Result of one scenario run.
type Result struct {
	Engine        string
	Scenario      string
	Logs          int
	Elapsed       time.Duration
	LogsPerSecond float64
	Latency       LatencySummary
	HeapKB        uint64
}

// LatencySummary is the per-record latency distribution of a latency
// run. Sampled is false for scenarios that only measure throughput.
type LatencySummary struct {
	Sampled bool
	Min     time.Duration
	Median  time.Duration
	P95     time.Duration
	P99     time.Duration
	Max     time.Duration
}

// Runner executes load scenarios against one engine.
type Runner struct {
	cfg    Config
	engine *Engine
}

// NewRunner validates cfg, creates the log directory and opens the
// configured engine.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, err
	}
	engine, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, engine: engine}, nil
}

// Close shuts the engine down.
func (r *Runner) Close() error {
	return r.engine.Close()
}

// warmup runs the unmeasured iterations on every worker.
func (r *Runner) warmup(ctx context.Context) error {
	if r.cfg.Warmup == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Threads; i++ {
		thread := i
		g.Go(func() error {
			for j := 0; j < r.cfg.Warmup; j++ {
				if j&1023 == 0 && gctx.Err() != nil {
					return gctx.Err()
				}
				r.engine.log(thread, j)
			}
			return nil
		})
	}
	return g.Wait()
}

// measure releases all workers at once and times the run. Each worker
// executes work for every iteration index.
func (r *Runner) measure(ctx context.Context, iterations int, work func(thread, iteration int)) (time.Duration, error) {
	start := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Threads; i++ {
		thread := i
		g.Go(func() error {
			<-start
			for j := 0; j < iterations; j++ {
				if j&1023 == 0 && gctx.Err() != nil {
					return gctx.Err()
				}
				work(thread, j)
			}
			return nil
		})
	}
	begin := time.Now()
	close(start)
	err := g.Wait()
	return time.Since(begin), err
}

// Throughput measures sustained records per second across all workers.
func (r *Runner) Throughput(ctx context.Context) (Result, error) {
	if err := r.warmup(ctx); err != nil {
		return Result{}, err
	}
	elapsed, err := r.measure(ctx, r.cfg.Iterations, func(thread, iteration int) {
		r.engine.log(thread, iteration)
	})
	if err != nil {
		return Result{}, err
	}
	return r.result("throughput", r.cfg.Threads*r.cfg.Iterations, elapsed, nil), nil
}

// Latency times every record and reports the distribution. Workers
// yield briefly every hundred records so the queue never saturates.
func (r *Runner) Latency(ctx context.Context) (Result, error) {
	if err := r.warmup(ctx); err != nil {
		return Result{}, err
	}
	samples := make([][]time.Duration, r.cfg.Threads)
	for i := range samples {
		samples[i] = make([]time.Duration, 0, r.cfg.Iterations)
	}
	elapsed, err := r.measure(ctx, r.cfg.Iterations, func(thread, iteration int) {
		begin := time.Now()
		r.engine.log(thread, iteration)
		samples[thread] = append(samples[thread], time.Since(begin))
		if iteration%100 == 0 {
			time.Sleep(time.Microsecond)
		}
	})
	if err != nil {
		return Result{}, err
	}
	var merged []time.Duration
	for _, s := range samples {
		merged = append(merged, s...)
	}
	summary := summarize(merged)
	return r.result("latency", r.cfg.Threads*r.cfg.Iterations, elapsed, &summary), nil
}

// Stress fires bursts of records with a fixed gap between them, the
// pattern rotation and retention see in production spikes.
func (r *Runner) Stress(ctx context.Context, burstSize, burstCount int) (Result, error) {
	start := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Threads; i++ {
		thread := i
		g.Go(func() error {
			<-start
			for burst := 0; burst < burstCount; burst++ {
				for j := 0; j < burstSize; j++ {
					r.engine.log(thread, burst*burstSize+j)
				}
				if burst == burstCount-1 {
					break
				}
				select {
				case <-gctx.Done():
					return gctx.Err()
				case <-time.After(burstGap):
				}
			}
			return nil
		})
	}
	begin := time.Now()
	close(start)
	err := g.Wait()
	if err != nil {
		return Result{}, err
	}
	elapsed := time.Since(begin)
	return r.result("stress", r.cfg.Threads*burstSize*burstCount, elapsed, nil), nil
}

func (r *Runner) result(scenario string, logs int, elapsed time.Duration, latency *LatencySummary) Result {
	res := Result{
		Engine:   r.engine.Name,
		Scenario: scenario,
		Logs:     logs,
		Elapsed:  elapsed,
		HeapKB:   heapKB(),
	}
	if elapsed > 0 {
		res.LogsPerSecond = float64(logs) / elapsed.Seconds()
	}
	if latency != nil {
		res.Latency = *latency
	}
	return res
}

func heapKB() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc / 1024
}
