package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/philipp01105/rotolog/benchmark/perf"
)

var version = "1.0.0"

// Latency runs time every record, so they default to a smaller
// measured load than the sustained scenarios.
const (
	latencyIterations = 5000
	latencyWarmup     = 1000
)

var (
	flagConfig     string
	flagName       string
	flagDir        string
	flagEngine     string
	flagThreads    int
	flagIterations int
	flagWarmup     int
	flagMsgSize    string
	flagBuffer     int
	flagDebug      bool
	flagConsole    bool
	flagCSV        string
	flagVerbose    bool

	flagBurstSize  int
	flagBurstCount int
)

var rootCmd = &cobra.Command{
	Use:   "rotobench",
	Short: "Logging load generator for rotolog",
	Long: `rotobench drives sustained, latency-sampled and bursty log loads
against the rotolog stack or a zap+lumberjack baseline and reports
throughput, latency percentiles and heap use.`,
	SilenceUsage: true,
}

var throughputCmd = &cobra.Command{
	Use:   "throughput",
	Short: "Measure sustained records per second",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		return run(cfg, "Throughput Results", func(ctx context.Context, r *perf.Runner) (perf.Result, error) {
			return r.Throughput(ctx)
		})
	},
}

var latencyCmd = &cobra.Command{
	Use:   "latency",
	Short: "Measure the per-record latency distribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		return run(latencyDefaults(cfg), "Latency Results", func(ctx context.Context, r *perf.Runner) (perf.Result, error) {
			return r.Latency(ctx)
		})
	},
}

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Fire bursts of records with gaps between them",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagBurstSize < 1 || flagBurstCount < 1 {
			return fmt.Errorf("burst-size and burst-count must be at least 1")
		}
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		return run(cfg, "Stress Results", func(ctx context.Context, r *perf.Runner) (perf.Result, error) {
			return r.Stress(ctx, flagBurstSize, flagBurstCount)
		})
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run throughput and latency on both engines",
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := buildConfig()
		if err != nil {
			return err
		}
		for _, engine := range []string{perf.EngineRotolog, perf.EngineZap} {
			cfg := base
			cfg.Engine = engine
			cfg.Name = base.Name + "_" + engine

			err := run(cfg, "Throughput Results", func(ctx context.Context, r *perf.Runner) (perf.Result, error) {
				return r.Throughput(ctx)
			})
			if err != nil {
				return err
			}

			err = run(latencyDefaults(cfg), "Latency Results", func(ctx context.Context, r *perf.Runner) (perf.Result, error) {
				return r.Latency(ctx)
			})
			if err != nil {
				return err
			}
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rotobench version %s\n", version)
	},
}

func init() {
	def := perf.DefaultConfig()

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "YAML run configuration file")
	pf.StringVar(&flagName, "name", def.Name, "run name and log file prefix")
	pf.StringVar(&flagDir, "dir", def.Dir, "directory for the run's log files")
	pf.StringVar(&flagEngine, "engine", def.Engine, "backend under load: rotolog or zap")
	pf.IntVarP(&flagThreads, "threads", "t", def.Threads, "concurrent workers")
	pf.IntVarP(&flagIterations, "iterations", "n", def.Iterations, "measured records per worker")
	pf.IntVar(&flagWarmup, "warmup", def.Warmup, "unmeasured records per worker")
	pf.StringVar(&flagMsgSize, "msg-size", def.MessageSize, "record payload class: small, medium or large")
	pf.IntVar(&flagBuffer, "buffer", def.BufferSize, "write buffer in bytes, 0 writes through")
	pf.BoolVar(&flagDebug, "debug", def.Debug, "emit debug records")
	pf.BoolVar(&flagConsole, "console", def.Console, "duplicate records to stderr")
	pf.StringVar(&flagCSV, "csv", def.CSVFile, "append results to this CSV file")
	pf.BoolVarP(&flagVerbose, "verbose", "v", def.Verbose, "print the run configuration first")

	stressCmd.Flags().IntVar(&flagBurstSize, "burst-size", 500, "records per worker in each burst")
	stressCmd.Flags().IntVar(&flagBurstCount, "burst-count", 5, "bursts per worker")

	rootCmd.AddCommand(throughputCmd)
	rootCmd.AddCommand(latencyCmd)
	rootCmd.AddCommand(stressCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(versionCmd)
}

func changed(name string) bool {
	return rootCmd.PersistentFlags().Changed(name)
}

// buildConfig layers explicit flags over the config file, and the
// config file over the defaults.
func buildConfig() (perf.Config, error) {
	cfg := perf.DefaultConfig()
	if flagConfig != "" {
		var err error
		if cfg, err = perf.Load(flagConfig); err != nil {
			return cfg, err
		}
	}

	if changed("name") {
		cfg.Name = flagName
	}
	if changed("dir") {
		cfg.Dir = flagDir
	}
	if changed("engine") {
		cfg.Engine = flagEngine
	}
	if changed("threads") {
		cfg.Threads = flagThreads
	}
	if changed("iterations") {
		cfg.Iterations = flagIterations
	}
	if changed("warmup") {
		cfg.Warmup = flagWarmup
	}
	if changed("msg-size") {
		cfg.MessageSize = flagMsgSize
	}
	if changed("buffer") {
		cfg.BufferSize = flagBuffer
	}
	if changed("debug") {
		cfg.Debug = flagDebug
	}
	if changed("console") {
		cfg.Console = flagConsole
	}
	if changed("csv") {
		cfg.CSVFile = flagCSV
	}
	if changed("verbose") {
		cfg.Verbose = flagVerbose
	}

	return cfg, cfg.Validate()
}

// latencyDefaults shrinks the measured load for per-record timing
// unless the user pinned the numbers through a flag or config file.
func latencyDefaults(cfg perf.Config) perf.Config {
	if flagConfig == "" && !changed("iterations") {
		cfg.Iterations = latencyIterations
	}
	if flagConfig == "" && !changed("warmup") {
		cfg.Warmup = latencyWarmup
	}
	return cfg
}

// run executes one scenario with interrupt handling and reports the
// result to stdout and, when configured, the CSV file.
func run(cfg perf.Config, title string, scenario func(context.Context, *perf.Runner) (perf.Result, error)) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Verbose {
		fmt.Printf("name=%s engine=%s threads=%d iterations=%d warmup=%d size=%s buffer=%d dir=%s\n",
			cfg.Name, cfg.Engine, cfg.Threads, cfg.Iterations, cfg.Warmup,
			cfg.MessageSize, cfg.BufferSize, cfg.Dir)
	}

	r, err := perf.NewRunner(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	res, err := scenario(ctx, r)
	if err != nil {
		return err
	}

	perf.Print(os.Stdout, title, cfg, res)
	if cfg.CSVFile != "" {
		return perf.AppendCSV(cfg.CSVFile, cfg, res)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
