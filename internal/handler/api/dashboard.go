package api

import (
	"net/http"

	"rentalflow/internal/events/observers"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	stats  *observers.StatsObserver
	report *observers.ReportObserver
}

func NewDashboardHandler(stats *observers.StatsObserver, report *observers.ReportObserver) *DashboardHandler {
	return &DashboardHandler{
		stats:  stats,
		report: report,
	}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	byEvent, byState := h.stats.Snapshot()

	eventCounts := make(map[string]int64, len(byEvent))
	for t, n := range byEvent {
		eventCounts[string(t)] = n
	}
	stateCounts := make(map[string]int64, len(byState))
	for s, n := range byState {
		stateCounts[s.String()] = n
	}

	c.JSON(http.StatusOK, gin.H{
		"eventCounts": eventCounts,
		"stateCounts": stateCounts,
	})
}

func (h *DashboardHandler) Reports(c *gin.Context) {
	lines := h.report.Lines()

	out := make([]gin.H, 0, len(lines))
	for _, line := range lines {
		out = append(out, gin.H{
			"orderId":     line.OrderID,
			"orderNumber": line.OrderNumber,
			"outcome":     line.Outcome,
			"lateReturn":  line.LateReturn,
			"totalCents":  line.TotalCents,
			"generatedAt": line.GeneratedAt,
			"summary":     line.String(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}
