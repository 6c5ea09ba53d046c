package handlers

import (
	"fmt"
	"net/http"
)

// GetThresholdHandler godoc
// @Summary Current low-stock threshold
// @Tags admin
// @Produce json
// @Success 200 {object} ThresholdResponse
// @Router /admin/threshold [get]
// @Security BearerAuth
func (s *Server) GetThresholdHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, ThresholdResponse{Threshold: s.products.LowStockThreshold()})
}

// SetThresholdHandler godoc
// @Summary Set the low-stock threshold
// @Description Negative values are stored as 0
// @Tags admin
// @Accept json
// @Produce json
// @Param threshold body ThresholdRequest true "New threshold"
// @Success 200 {object} ThresholdResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/threshold [put]
// @Security BearerAuth
func (s *Server) SetThresholdHandler(w http.ResponseWriter, r *http.Request) {
	var req ThresholdRequest
	if err := readJSON(w, r, &req); err != nil || req.Threshold == nil {
		s.respondError(w, http.StatusBadRequest, "invalid input")
		return
	}

	stored := s.products.SetLowStockThreshold(*req.Threshold)
	s.log.Info().Int("threshold", stored).Msg("low-stock threshold changed")
	s.respond(w, http.StatusOK, ThresholdResponse{Threshold: stored})
}

// ResetSampleHandler godoc
// @Summary Restore the sample products
// @Tags admin
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /admin/reset [post]
// @Security BearerAuth
func (s *Server) ResetSampleHandler(w http.ResponseWriter, r *http.Request) {
	s.products.ResetSample()
	s.log.Info().Msg("sample data restored")
	s.respond(w, http.StatusOK, MessageResponse{Message: "Sample data restored."})
}

// ClearAllHandler godoc
// @Summary Remove every product
// @Tags admin
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /admin/clear [post]
// @Security BearerAuth
func (s *Server) ClearAllHandler(w http.ResponseWriter, r *http.Request) {
	s.products.ClearAll()
	s.log.Info().Msg("all products cleared")
	s.respond(w, http.StatusOK, MessageResponse{Message: "All products cleared."})
}

// GetDashboardMetricsHandler godoc
// @Summary Dashboard figures
// @Tags metrics
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /dashboard [get]
// @Security BearerAuth
func (s *Server) GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := s.metrics.GetDashboardMetrics()
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch metrics")
		s.respondError(w, http.StatusInternalServerError, "failed to fetch metrics")
		return
	}
	s.respond(w, http.StatusOK, m)
}

// LowStockReportHandler godoc
// @Summary Low stock report
// @Description Products at or below the threshold, in list order. format=text returns the printable report.
// @Tags reports
// @Produce json,plain
// @Param format query string false "json (default) or text"
// @Success 200 {object} repo.LowStockReport
// @Router /reports/low-stock [get]
// @Security BearerAuth
func (s *Server) LowStockReportHandler(w http.ResponseWriter, r *http.Request) {
	report := s.products.LowStockReport()

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := fmt.Fprint(w, report.Text()); err != nil {
			s.log.Error().Err(err).Msg("failed to write report")
		}
		return
	}
	s.respond(w, http.StatusOK, report)
}

// HealthHandler reports liveness.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}
