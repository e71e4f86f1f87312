package sysinfo

import (
	"errors"
	"runtime"
	"syscall"
)

// ErrNoMemoryInfo returned when total memory cannot be determined
var ErrNoMemoryInfo = errors.New("unable to determine total system memory")

// HostResources detected host memory and CPU counts
type HostResources struct {
	TotalMemoryMB uint64
	CPUCores      int
}

// Detect queries the operating system for total physical memory
// and logical CPU count. All downstream sizing depends on the
// memory figure, so an unreadable or zero value is an error
// rather than a default.
func Detect() (HostResources, error) {
	var sysInfo syscall.Sysinfo_t
	err := syscall.Sysinfo(&sysInfo)
	if err != nil {
		return HostResources{}, err
	}

	unit := uint64(sysInfo.Unit)
	if unit == 0 {
		unit = 1
	}

	totalMB := uint64(sysInfo.Totalram) * unit / (1 << 20)
	if totalMB == 0 {
		return HostResources{}, ErrNoMemoryInfo
	}

	return HostResources{
		TotalMemoryMB: totalMB,
		CPUCores:      runtime.NumCPU(),
	}, nil
}
