package api

import (
	"encoding/csv"
	"log/slog"
	"net/http"

	"cargo-tracking-service/internal/model"
)

func (h *Handler) PackagesCSV(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.packages.ListAll(r.Context())
	if err != nil {
		slog.Error("csv report failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=packages_report.csv`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{
		"Tracking ID", "Sender Name", "Sender Phone",
		"Receiver Name", "Receiver Phone", "Status",
		"Created At", "Updated At",
	})

	for _, p := range pkgs {
		updatedAt := ""
		if !p.UpdatedAt.IsZero() {
			updatedAt = p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
		}
		_ = cw.Write([]string{
			p.TrackingID,
			p.Sender.Name,
			p.Sender.Phone,
			p.Receiver.Name,
			p.Receiver.Phone,
			string(p.Status),
			p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			updatedAt,
		})
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("csv write failed", "error", err)
	}
}

func (h *Handler) WarehouseStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.packages.CountByStatus(r.Context())
	if err != nil {
		slog.Error("warehouse stats failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	total := 0
	byStatus := make(map[string]int, len(counts))
	for status, n := range counts {
		total += n
		byStatus[string(status)] = n
	}

	// Report the full status set even when a bucket is empty.
	for _, status := range []model.Status{
		model.Registered, model.InTransit, model.Delivered, model.Delayed, model.Cancelled,
	} {
		if _, ok := byStatus[string(status)]; !ok {
			byStatus[string(status)] = 0
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_packages": total,
		"by_status":      byStatus,
	})
}
