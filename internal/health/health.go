package health

import (
	"context"
	"time"

	"horplus-console/internal/upstream"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

type Status struct {
	Status        string  `json:"status"`
	UpstreamOK    bool    `json:"upstream_ok"`
	UpstreamError string  `json:"upstream_error,omitempty"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskPercent   float64 `json:"disk_percent"`
	Uptime        string  `json:"uptime"`
}

type Checker struct {
	api     *upstream.Client
	started time.Time
}

func NewChecker(api *upstream.Client) *Checker {
	return &Checker{api: api, started: time.Now()}
}

// Check probes the upstream API and samples host resources. The console is
// "degraded", not down, when only the upstream is unreachable.
func (c *Checker) Check(ctx context.Context) Status {
	st := Status{Status: "ok", UpstreamOK: true, Uptime: time.Since(c.started).Round(time.Second).String()}

	if err := c.api.Ping(ctx); err != nil {
		// A 4xx/5xx still proves the host answered; only transport
		// failures mean the API is unreachable.
		if upstream.StatusOf(err) == 0 {
			st.Status = "degraded"
			st.UpstreamOK = false
			st.UpstreamError = err.Error()
		}
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		st.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		st.MemoryPercent = vm.UsedPercent
	}
	if du, err := disk.Usage("/"); err == nil {
		st.DiskPercent = du.UsedPercent
	}

	return st
}
