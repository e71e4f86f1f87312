package tuner

import (
	"fmt"
	"io"

	"mycnftune/pkg/sysinfo"
)

// Report writes the detected resources and every computed
// parameter to w. Printed before the target file is touched so
// the operator sees the full set even if applying fails later.
func Report(w io.Writer, res sysinfo.HostResources, rec *Recommendation) {
	fmt.Fprintf(w, "Detected resources:\n")
	fmt.Fprintf(w, "  total memory:       %d MB\n", res.TotalMemoryMB)
	fmt.Fprintf(w, "  cpu cores:          %d\n", res.CPUCores)
	fmt.Fprintf(w, "Memory budget:\n")
	fmt.Fprintf(w, "  database memory:    %d MB\n", rec.DBMemoryMB)
	fmt.Fprintf(w, "  connections memory: %d MB\n", rec.ConnectionsMemoryMB)
	fmt.Fprintf(w, "  remaining memory:   %d MB\n", rec.RemainingMemoryMB)
	fmt.Fprintf(w, "Recommended parameters:\n")
	for _, p := range rec.Parameters {
		if p.Value == "" {
			fmt.Fprintf(w, "  %s\n", p.Key)
			continue
		}
		fmt.Fprintf(w, "  %s = %s\n", p.Key, p.Value)
	}
}
