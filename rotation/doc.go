// Package rotation implements size-rotated log files with timestamped
// names, a stable "latest" alias per stream, and total-size retention.
//
// A Sink owns exactly one open file for its stream. Every write checks a
// cheap approximate size counter; when the next message would push the
// file past the limit, the sink rolls over to a fresh file named
//
//	{dir}/{TAG}.{YYYYMMDD_HHMMSS}.{base}
//
// and repoints the alias {dir}/{base}.{TAG} at it. After every rollover
// the stream's files are pruned oldest-first until they fit the total
// budget again. The currently-open file is never pruned.
//
// Sinks are safe for concurrent use. The write path stays lock-light: a
// per-write atomic size check, with the on-disk size consulted at most
// once per CheckInterval to correct counter drift, and a dedicated
// rotation mutex taken only when a rollover looks necessary.
//
// Sink implements io.WriteCloser plus a Sync method, which makes it
// usable directly as a zap WriteSyncer or behind any engine that hands
// finished byte buffers to a writer.
package rotation
