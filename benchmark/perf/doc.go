// Package perf drives reproducible load against a logging backend:
// multi-worker throughput runs, per-record latency distributions and
// bursty stress runs, with a text report and optional CSV output for
// tracking results across runs.
//
// Two engines are available. The rotolog engine exercises this
// module's façade end to end; the zap engine writes through
// zap+lumberjack as the ecosystem baseline. Workers spread records
// across all four levels so every rotating stream sees traffic.
package perf
