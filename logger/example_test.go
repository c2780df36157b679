package logger_test

import (
	"github.com/philipp01105/rotolog/logger"
)

// Use the package-level default logger for quick, no-setup logging.
func Example() {
	logger.Init(logger.Config{Prefix: "logs/app_log", Console: true})
	defer logger.Shutdown()

	logger.Infof("application started")
	logger.Warnf("cache miss rate %.1f%%", 12.5)
}

// Create a Logger with explicit rotation limits and JSON records.
func ExampleNew() {
	log, err := logger.New(logger.Config{
		Prefix:       "logs/app_log",
		Format:       logger.FormatJSON,
		MaxFileSize:  64 << 20,
		MaxTotalSize: 512 << 20,
	})
	if err != nil {
		panic(err)
	}
	defer log.Close()

	log.Infof("listening on :%d", 8080)
	log.Errorf("upstream %s unreachable", "db-1")
}

// Raise the level at runtime to silence everything below errors.
func ExampleLogger_SetLevel() {
	log, err := logger.New(logger.Config{Prefix: "logs/app_log"})
	if err != nil {
		panic(err)
	}
	defer log.Close()

	log.SetLevel(logger.ErrorLevel)
	log.Infof("dropped")
	log.Errorf("kept")
}
