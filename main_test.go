package main

import (
	"os"
	"testing"
)

// The throughput benchmark re-executes the current binary as a worker. Under
// `go test` the current binary is the test binary, so worker mode has to be
// handled before any test runs.
func TestMain(m *testing.M) {
	if isWorkerProcess() {
		if err := RunWorker(); err != nil {
			Logger.Fatalf("worker failed: %v", err)
		}
		os.Exit(0)
	}
	os.Exit(m.Run())
}
