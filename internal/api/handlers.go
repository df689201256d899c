package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"cargo-tracking-service/internal/auth"
	"cargo-tracking-service/internal/model"
	"cargo-tracking-service/internal/repo"
	"cargo-tracking-service/internal/service"
)

type Handler struct {
	lifecycle *service.Lifecycle
	packages  repo.PackageRepository
	refs      repo.ReferenceRepository
	users     repo.UserRepository
	tokens    *auth.TokenIssuer
}

func NewHandler(
	lifecycle *service.Lifecycle,
	packages repo.PackageRepository,
	refs repo.ReferenceRepository,
	users repo.UserRepository,
	tokens *auth.TokenIssuer,
) *Handler {
	return &Handler{
		lifecycle: lifecycle,
		packages:  packages,
		refs:      refs,
		users:     users,
		tokens:    tokens,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

type registerPackageRequest struct {
	SenderName    string `json:"sender_name"`
	SenderPhone   string `json:"sender_phone"`
	ReceiverName  string `json:"receiver_name"`
	ReceiverPhone string `json:"receiver_phone"`
	OriginWHID    string `json:"origin_wh_id"`
	DestWHID      string `json:"dest_wh_id"`
	BoxTypeID     string `json:"box_type_id"`
}

type packageResponse struct {
	ID            string     `json:"id"`
	TrackingID    string     `json:"tracking_id"`
	SenderName    string     `json:"sender_name"`
	SenderPhone   string     `json:"sender_phone"`
	ReceiverName  string     `json:"receiver_name"`
	ReceiverPhone string     `json:"receiver_phone"`
	OriginWHID    string     `json:"origin_wh_id"`
	DestWHID      string     `json:"dest_wh_id"`
	BoxTypeID     string     `json:"box_type_id"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func toPackageResponse(p *model.Package) packageResponse {
	res := packageResponse{
		ID:            p.ID,
		TrackingID:    p.TrackingID,
		SenderName:    p.Sender.Name,
		SenderPhone:   p.Sender.Phone,
		ReceiverName:  p.Receiver.Name,
		ReceiverPhone: p.Receiver.Phone,
		OriginWHID:    p.OriginWHID,
		DestWHID:      p.DestWHID,
		BoxTypeID:     p.BoxTypeID,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		res.UpdatedAt = &t
	}
	return res
}

func (h *Handler) RegisterPackage(w http.ResponseWriter, r *http.Request) {
	var req registerPackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if req.SenderName == "" || req.SenderPhone == "" ||
		req.ReceiverName == "" || req.ReceiverPhone == "" ||
		req.OriginWHID == "" || req.DestWHID == "" || req.BoxTypeID == "" {
		writeError(w, http.StatusBadRequest, "all package fields are required")
		return
	}

	pkg, err := h.lifecycle.Register(r.Context(), service.RegisterInput{
		Sender:     model.Party{Name: req.SenderName, Phone: req.SenderPhone},
		Receiver:   model.Party{Name: req.ReceiverName, Phone: req.ReceiverPhone},
		OriginWHID: req.OriginWHID,
		DestWHID:   req.DestWHID,
		BoxTypeID:  req.BoxTypeID,
	})
	if errors.Is(err, service.ErrUnknownReference) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("register package failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toPackageResponse(pkg))
}

func (h *Handler) GetPackage(w http.ResponseWriter, r *http.Request) {
	trackingID := r.PathValue("trackingID")

	pkg, err := h.packages.FindByTrackingID(r.Context(), trackingID)
	if errors.Is(err, repo.ErrNotFound) {
		writeError(w, http.StatusNotFound, "package not found")
		return
	}
	if err != nil {
		slog.Error("get package failed", "tracking_id", trackingID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toPackageResponse(pkg))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdatePackageStatus(w http.ResponseWriter, r *http.Request) {
	trackingID := r.PathValue("trackingID")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	res, err := h.lifecycle.Transition(r.Context(), trackingID, req.Status)
	switch {
	case errors.Is(err, service.ErrUnknownStatus):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, service.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, repo.ErrNotFound):
		writeError(w, http.StatusNotFound, "package not found")
		return
	case err != nil:
		slog.Error("update package status failed", "tracking_id", trackingID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tracking_id": res.Package.TrackingID,
		"status":      string(res.NewStatus),
		"old_status":  string(res.OldStatus),
		"message":     "Package status updated successfully",
	})
}

func (h *Handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	skip := parseInt(r.URL.Query().Get("skip"), 0)
	limit := parseInt(r.URL.Query().Get("limit"), 100)

	pkgs, total, err := h.packages.List(r.Context(), skip, limit)
	if err != nil {
		slog.Error("list packages failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	items := make([]packageResponse, 0, len(pkgs))
	for i := range pkgs {
		items = append(items, toPackageResponse(&pkgs[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"packages": items,
		"total":    total,
		"skip":     skip,
		"limit":    limit,
	})
}

func parseInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
