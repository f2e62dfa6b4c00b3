package handlers

import (
	"context"
	"time"

	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

type Response struct {
	StatusCode int64       `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(int(Err.ErrCode), Response{
		StatusCode: Err.ErrCode,
		Data:       data,
		Message:    Err.ErrMsg,
		Success:    Err.ErrCode == errno.SuccessCode,
	})
}

type healthReport struct {
	Status        string  `json:"status"`
	UptimeSeconds uint64  `json:"uptime_seconds"`
	CpuPercent    float64 `json:"cpu_percent"`
	MemPercent    float64 `json:"mem_percent"`
	Timestamp     string  `json:"timestamp"`
}

// HealthCheck reports liveness plus a few host numbers. Metric failures are
// logged and zeroed, the endpoint itself stays green.
func HealthCheck(ctx context.Context, c *app.RequestContext) {
	report := &healthReport{
		Status:    "OK",
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if uptime, err := host.UptimeWithContext(ctx); err == nil {
		report.UptimeSeconds = uptime
	} else {
		hlog.Warnf("read host uptime failed: %v", err)
	}
	if percents, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(percents) > 0 {
		report.CpuPercent = percents[0]
	} else if err != nil {
		hlog.Warnf("read cpu percent failed: %v", err)
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		report.MemPercent = vm.UsedPercent
	} else {
		hlog.Warnf("read memory failed: %v", err)
	}
	SendResponse(c, errno.Success, report)
}
