package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-finder/internal/domain/geo"
	"pet-finder/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/me", getMeHandler(svc))
	r.Put("/me/location", putLocationHandler(svc))
	r.Put("/me/preferences", putPreferencesHandler(svc))
}

type locationRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type preferencesRequest struct {
	AlertRadiusKm *float64  `json:"alert_radius_km"`
	Frequency     Frequency `json:"frequency"`
}

// getMeHandler godoc
// @Summary  Usuario actual (ubicación y preferencias)
// @Tags     me
// @Produce  json
// @Param    X-User-ID header string true "usuario simulado"
// @Success  200 {object} User
// @Router   /me [get]
func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "missing X-User-ID", http.StatusUnauthorized)
			return
		}

		u, err := svc.Get(r.Context(), uid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

// putLocationHandler godoc
// @Summary  Guarda la ubicación del usuario
// @Tags     me
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "usuario simulado"
// @Success  200 {object} User
// @Router   /me/location [put]
func putLocationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "missing X-User-ID", http.StatusUnauthorized)
			return
		}

		var req locationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Lat == nil || req.Lng == nil {
			http.Error(w, "lat and lng are required", http.StatusBadRequest)
			return
		}

		u, err := svc.SaveLocation(r.Context(), uid, geo.Location{Lat: *req.Lat, Lng: *req.Lng})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

// putPreferencesHandler godoc
// @Summary  Guarda preferencias de alerta (radio 0 o ausente = sin límite)
// @Tags     me
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "usuario simulado"
// @Success  200 {object} User
// @Router   /me/preferences [put]
func putPreferencesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "missing X-User-ID", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		var req preferencesRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.SavePreferences(r.Context(), uid, Preferences{
			AlertRadiusKm: req.AlertRadiusKm,
			Frequency:     req.Frequency,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
