package sightings

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pet-finder/internal/domain/geo"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/middleware"
)

const MaxBodyBytes = 8 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/sightings", func(sr chi.Router) {
		sr.Post("/", reportHandler(svc))
		sr.Get("/", listHandler(svc))
		sr.Get("/{sightingID}", getHandler(svc))
	})

	r.Get("/risk", riskHandler(svc))
}

type reportRequest struct {
	Species reports.Species   `json:"species"`
	Breed   string            `json:"breed"`
	Color   string            `json:"color"`
	Size    reports.Size      `json:"size"`
	Age     reports.LifeStage `json:"age"`
	Notes   string            `json:"notes"`
	Time    string            `json:"time"`
	Geo     geo.Location      `json:"geo"`
	Photo   string            `json:"photo"`
}

// reportHandler godoc
// @Summary  Reporta un avistamiento
// @Tags     sightings
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "usuario simulado"
// @Success  201 {object} reports.Sighting
// @Failure  400 {string} string
// @Router   /sightings [post]
func reportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "missing X-User-ID", http.StatusUnauthorized)
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
		if err != nil {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return
		}
		if err := reports.ValidateSightingPayload(raw); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var req reportRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sg, err := svc.Report(r.Context(), uid, ReportInput{
			Species:  req.Species,
			Breed:    req.Breed,
			Color:    req.Color,
			Size:     req.Size,
			Age:      req.Age,
			Notes:    req.Notes,
			Time:     req.Time,
			Location: req.Geo,
			Photo:    req.Photo,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, sg)
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sg, err := svc.GetByID(r.Context(), chi.URLParam(r, "sightingID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sg)
	}
}

// riskHandler godoc
// @Summary  Nivel de riesgo de la zona (avistamientos a 2 km en 72 h)
// @Tags     sightings
// @Produce  json
// @Param    lat query number true "latitud"
// @Param    lng query number true "longitud"
// @Success  200 {object} RiskReport
// @Router   /risk [get]
func riskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
		lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
		if errLat != nil || errLng != nil || !(math.Abs(lat) <= 90) || !(math.Abs(lng) <= 180) {
			http.Error(w, "lat and lng query params are required", http.StatusBadRequest)
			return
		}

		rep, err := svc.Risk(r.Context(), geo.Location{Lat: lat, Lng: lng})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, reports.ErrFutureTimestamp):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "sighting not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
