package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"cargo-tracking-service/internal/auth"
	"cargo-tracking-service/internal/model"
)

func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.refs.ListCountries(r.Context())
	if err != nil {
		slog.Error("list countries failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	items := make([]map[string]any, 0, len(countries))
	for _, c := range countries {
		items = append(items, map[string]any{
			"id":       c.ID,
			"iso_code": c.ISOCode,
			"name":     c.Name,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"countries": items})
}

func (h *Handler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ISOCode string `json:"iso_code"`
		Name    string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.ISOCode == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "iso_code and name are required")
		return
	}

	c := &model.Country{ID: uuid.NewString(), ISOCode: req.ISOCode, Name: req.Name}
	if err := h.refs.CreateCountry(r.Context(), c); err != nil {
		slog.Error("create country failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":       c.ID,
		"iso_code": c.ISOCode,
		"name":     c.Name,
		"message":  "Country created successfully",
	})
}

func (h *Handler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.refs.ListWarehouses(r.Context())
	if err != nil {
		slog.Error("list warehouses failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	items := make([]map[string]any, 0, len(warehouses))
	for _, wh := range warehouses {
		items = append(items, map[string]any{
			"id":         wh.ID,
			"name":       wh.Name,
			"city":       wh.City,
			"country_id": wh.CountryID,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"warehouses": items})
}

func (h *Handler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		City      string `json:"city"`
		CountryID string `json:"country_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Name == "" || req.City == "" || req.CountryID == "" {
		writeError(w, http.StatusBadRequest, "name, city and country_id are required")
		return
	}

	wh := &model.Warehouse{ID: uuid.NewString(), Name: req.Name, City: req.City, CountryID: req.CountryID}
	if err := h.refs.CreateWarehouse(r.Context(), wh); err != nil {
		slog.Error("create warehouse failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":         wh.ID,
		"name":       wh.Name,
		"city":       wh.City,
		"country_id": wh.CountryID,
		"message":    "Warehouse created successfully",
	})
}

func (h *Handler) ListBoxTypes(w http.ResponseWriter, r *http.Request) {
	boxTypes, err := h.refs.ListBoxTypes(r.Context())
	if err != nil {
		slog.Error("list box types failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	items := make([]map[string]any, 0, len(boxTypes))
	for _, bt := range boxTypes {
		items = append(items, map[string]any{
			"id":        bt.ID,
			"code":      bt.Code,
			"dim_label": bt.DimLabel,
			"price_lkr": bt.PriceLKR,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"box_types": items})
}

func (h *Handler) CreateBoxType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code     string  `json:"code"`
		DimLabel string  `json:"dim_label"`
		PriceLKR float64 `json:"price_lkr"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Code == "" || req.DimLabel == "" {
		writeError(w, http.StatusBadRequest, "code and dim_label are required")
		return
	}

	bt := &model.BoxType{ID: uuid.NewString(), Code: req.Code, DimLabel: req.DimLabel, PriceLKR: req.PriceLKR}
	if err := h.refs.CreateBoxType(r.Context(), bt); err != nil {
		slog.Error("create box type failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":        bt.ID,
		"code":      bt.Code,
		"dim_label": bt.DimLabel,
		"price_lkr": bt.PriceLKR,
		"message":   "Box type created successfully",
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	items := make([]map[string]any, 0, len(users))
	for _, u := range users {
		items = append(items, map[string]any{
			"id":         u.ID,
			"name":       u.Name,
			"email":      u.Email,
			"role":       u.Role,
			"active":     u.Active,
			"created_at": u.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": items})
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}
	if req.Role != model.RoleAdmin && req.Role != model.RoleStaff {
		writeError(w, http.StatusBadRequest, "role must be admin or staff")
		return
	}

	pwHash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("password hash failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	u := &model.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		PwHash:    pwHash,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.users.Create(r.Context(), u); err != nil {
		slog.Error("create user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      u.ID,
		"name":    u.Name,
		"email":   u.Email,
		"role":    u.Role,
		"active":  u.Active,
		"message": "User created successfully",
	})
}
