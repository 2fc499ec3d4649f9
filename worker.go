package main

import (
	"fmt"
	"os"
)

// A throughput worker is this binary re-executed with its trial parameters in
// the environment. Env is the configuration surface everywhere else in this
// program, so the worker handshake uses it too.
const (
	workerEnvFlag        = "LAYOUT_WORKER"
	workerEnvSeed        = "LAYOUT_WORKER_SEED"
	workerEnvObjects     = "LAYOUT_WORKER_OBJECTS"
	workerEnvQueries     = "LAYOUT_WORKER_QUERIES"
	workerEnvGrid        = "LAYOUT_WORKER_GRID"
	workerEnvLayout      = "LAYOUT_WORKER_LAYOUT"
	workerEnvMixLocToID  = "LAYOUT_WORKER_MIX_LOC_TO_ID"
	workerEnvMixIDToLoc  = "LAYOUT_WORKER_MIX_ID_TO_LOC"
	workerEnvMixCombined = "LAYOUT_WORKER_MIX_COMBINED"
)

func isWorkerProcess() bool {
	return os.Getenv(workerEnvFlag) == "1"
}

func workerEnviron(cfg TrialConfig) []string {
	return []string{
		workerEnvFlag + "=1",
		fmt.Sprintf("%v=%v", workerEnvSeed, cfg.Seed),
		fmt.Sprintf("%v=%v", workerEnvObjects, cfg.Objects),
		fmt.Sprintf("%v=%v", workerEnvQueries, cfg.Queries),
		fmt.Sprintf("%v=%v", workerEnvGrid, cfg.Grid),
		fmt.Sprintf("%v=%v", workerEnvLayout, cfg.Layout),
		fmt.Sprintf("%v=%v", workerEnvMixLocToID, cfg.Mix.LocationToID),
		fmt.Sprintf("%v=%v", workerEnvMixIDToLoc, cfg.Mix.IDToLocation),
		fmt.Sprintf("%v=%v", workerEnvMixCombined, cfg.Mix.Combined),
	}
}

func workerConfig() TrialConfig {
	return TrialConfig{
		Seed:    Int64Env(workerEnvSeed, 0),
		Objects: IntEnv(workerEnvObjects, 0),
		Queries: IntEnv(workerEnvQueries, 0),
		Grid:    IntEnv(workerEnvGrid, 0),
		Layout:  LayoutKind(StringEnv(workerEnvLayout, "")),
		Mix: QueryMix{
			LocationToID: FloatEnv(workerEnvMixLocToID, 0),
			IDToLocation: FloatEnv(workerEnvMixIDToLoc, 0),
			Combined:     FloatEnv(workerEnvMixCombined, 0),
		},
	}
}

// RunWorker executes a single trial in this isolated process. The mean
// latency is logged for debugging only; the parent measures nothing but the
// wall time of the whole phase.
func RunWorker() error {
	cfg := workerConfig()
	result, err := RunTrial(cfg)
	if err != nil {
		return fmt.Errorf("worker trial failed: %w", err)
	}
	Logger.Debugf("worker seed=%v layout=%v finished: %.3fus/query", result.Seed, result.Layout, result.MeanMicros)
	return nil
}
