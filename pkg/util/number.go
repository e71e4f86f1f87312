package util

import "fmt"

const (
	// MB bytes per megabyte
	MB = uint64(1) << 20
	// MBPerGB megabytes per gigabyte
	MBPerGB = 1024
)

// MBToSizeString renders a size given in megabytes as a my.cnf
// size literal, rounding down to whole gigabytes
func MBToSizeString(sizeMB uint64) string {
	if sizeMB >= MBPerGB {
		return fmt.Sprintf("%dG", sizeMB/MBPerGB)
	}
	return fmt.Sprintf("%dM", sizeMB)
}

// NextUint64Multiple returns next multiple of 'base'
// that greater than or equal to 'current'
func NextUint64Multiple(current, base uint64) uint64 {
	if base == 0 {
		return 0
	}

	if current%base == 0 {
		return current
	}

	return (current - current%base) + base
}
