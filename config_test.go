package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvHelpers(t *testing.T) {
	require.Equal(t, "fallback", StringEnv("LAYOUT_TEST_MISSING", "fallback"))
	require.Equal(t, 7, IntEnv("LAYOUT_TEST_MISSING", 7))

	t.Setenv("LAYOUT_TEST_STRING", "value")
	require.Equal(t, "value", StringEnv("LAYOUT_TEST_STRING", "fallback"))

	t.Setenv("LAYOUT_TEST_INT", "42")
	require.Equal(t, 42, IntEnv("LAYOUT_TEST_INT", 7))
	t.Setenv("LAYOUT_TEST_INT", "garbage")
	require.Equal(t, 7, IntEnv("LAYOUT_TEST_INT", 7))

	t.Setenv("LAYOUT_TEST_INT64", "9000000000")
	require.Equal(t, int64(9_000_000_000), Int64Env("LAYOUT_TEST_INT64", 0))

	t.Setenv("LAYOUT_TEST_FLOAT", "0.375")
	require.Equal(t, 0.375, FloatEnv("LAYOUT_TEST_FLOAT", 0))
	t.Setenv("LAYOUT_TEST_FLOAT", "garbage")
	require.Equal(t, 0.5, FloatEnv("LAYOUT_TEST_FLOAT", 0.5))
}

func TestHostStat(t *testing.T) {
	info := HostStat()
	require.GreaterOrEqual(t, info.LogicalCPUs, 1)
	require.GreaterOrEqual(t, info.LogicalCPUs, info.PhysicalCPUs)
}
