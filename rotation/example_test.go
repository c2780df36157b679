package rotation_test

import (
	"log"

	"github.com/philipp01105/rotolog/rotation"
)

// Rotate a stream's files at 1 MiB each and keep at most 10 MiB of
// history. The current file is always reachable via logs/app_log.INFO.
func ExampleNewSink() {
	sink, err := rotation.NewSink(rotation.Config{
		Prefix:       "logs/app_log",
		Tag:          "INFO",
		MaxFileSize:  1 << 20,
		MaxTotalSize: 10 << 20,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer sink.Close()

	sink.Write([]byte("service ready\n"))
	sink.Sync()
}
