// Package logger is the public API of rotolog. Most users only need
// to import this package.
//
// A Logger fans printf-formatted records out to three rotating file
// streams sharing one path prefix: INFO carries everything the logger
// emits, WARN carries warnings and above, ERROR carries errors. Each
// stream is a rotation.Sink, so it rolls to a fresh timestamped file
// at the size limit, keeps a stable alias pointing at the current
// file, and prunes history to a total-size budget. Encoding and
// delivery run on zap.
//
//	log, err := logger.New(logger.Config{Prefix: "logs/app_log"})
//	if err != nil {
//		return err
//	}
//	defer log.Close()
//
//	log.Infof("listening on :%d", 8080)
//
// Files land next to each other:
//
//	logs/INFO.20260102_150405.app_log   historical file
//	logs/app_log.INFO                   alias to the current file
//
// The level can be changed at runtime with SetLevel; Debugf output is
// dropped entirely until the logger runs at debug level. With
// Config.BufferSize set, records are batched through zap's buffered
// write syncer and flushed every FlushInterval, trading latency for
// fewer syscalls.
//
// The package also carries an optional process-wide default, armed
// exactly once via Init and addressed through package-level functions
// that are safe no-ops while uninitialized:
//
//	logger.Init(logger.Config{Prefix: "logs/app_log", Console: true})
//	logger.Infof("ready")
//	defer logger.Shutdown()
package logger
