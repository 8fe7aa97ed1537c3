// Package sysmon samples system-wide resource usage for the monitor
// endpoints.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one snapshot of system-wide usage, all values 0..100.
type Stats struct {
	CPUPercent  float64 `json:"cpu_percent"`
	MemPercent  float64 `json:"mem_percent"`
	DiskPercent float64 `json:"disk_percent"`
}

// Sample collects one CPU, memory and disk usage snapshot. CPU uses
// interval=0 (delta since the previous call). Fields stay zero for
// sources that fail, a snapshot never errors out as a whole.
func Sample(diskPath string) Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	if usage, err := disk.Usage(diskPath); err == nil && usage != nil {
		s.DiskPercent = usage.UsedPercent
	}
	return s
}
