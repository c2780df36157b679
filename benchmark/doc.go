// Package benchmark compares the rotolog stack against other Go
// logging frameworks under identical conditions.
//
// Run the comparative suite with:
//
//	go test -bench=. -benchmem
//
// The perf subpackage and the rotobench command cover sustained load,
// latency distribution and burst scenarios beyond what the go test
// benchmark runner measures.
package benchmark
