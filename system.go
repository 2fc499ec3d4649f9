package main

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

type SysInfo struct {
	Arch         string
	Hostname     string
	Platform     string
	PhysicalCPUs int
	LogicalCPUs  int
	RAM          float64
}

// HostStat gathers host facts for the startup report. The benchmark never
// adapts to them: the OS scheduler still decides where worker processes land,
// and with more workers than cores it will time-slice.
func HostStat() SysInfo {
	hostStat, _ := host.Info()
	physical, _ := cpu.Counts(false)
	logical, _ := cpu.Counts(true)
	vmStat, _ := mem.VirtualMemory()
	return SysInfo{
		Arch:         runtime.GOARCH,
		Hostname:     hostStat.Hostname,
		Platform:     hostStat.Platform,
		PhysicalCPUs: physical,
		LogicalCPUs:  logical,
		RAM:          float64(vmStat.Total) / 1024 / 1024 / 1024,
	}
}
