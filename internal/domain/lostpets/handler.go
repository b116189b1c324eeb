package lostpets

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-finder/internal/domain/geo"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/middleware"
)

// MaxBodyBytes: las fotos llegan como data URL dentro del JSON.
const MaxBodyBytes = 8 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/lost-pets", func(lr chi.Router) {
		lr.Post("/", reportHandler(svc))
		lr.Get("/", listHandler(svc))
		lr.Get("/{lostPetID}", getHandler(svc))
		lr.Delete("/{lostPetID}", markFoundHandler(svc))
		lr.Get("/{lostPetID}/matches", matchesHandler(svc))
		lr.Get("/{lostPetID}/zone", zoneHandler(svc))
	})

	r.Get("/me/lost-pets", listMineHandler(svc))
}

type reportRequest struct {
	Name         string            `json:"name"`
	Species      reports.Species   `json:"species"`
	Breed        string            `json:"breed"`
	Color        string            `json:"color"`
	Size         reports.Size      `json:"size"`
	Age          reports.LifeStage `json:"age"`
	LastSeenAt   string            `json:"last_seen_at"`
	Geo          geo.Location      `json:"geo"`
	GPSEnabled   bool              `json:"gps_enabled"`
	SpecialNeeds bool              `json:"special_needs"`
	Photo        string            `json:"photo"`
}

// reportHandler godoc
// @Summary  Reporta una mascota perdida y devuelve zona + matches
// @Tags     lost-pets
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "usuario simulado"
// @Success  201 {object} ReportResult
// @Failure  400 {string} string
// @Router   /lost-pets [post]
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
		if err := reports.ValidateLostPetPayload(raw); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var req reportRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Report(r.Context(), uid, ReportInput{
			Name:         req.Name,
			Species:      req.Species,
			Breed:        req.Breed,
			Color:        req.Color,
			Size:         req.Size,
			Age:          req.Age,
			LastSeenAt:   req.LastSeenAt,
			Location:     req.Geo,
			GPSEnabled:   req.GPSEnabled,
			SpecialNeeds: req.SpecialNeeds,
			Photo:        req.Photo,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, res)
	}
}

// listHandler godoc
// @Summary  Lista todas las mascotas perdidas
// @Tags     lost-pets
// @Produce  json
// @Success  200 {array} reports.LostPet
// @Router   /lost-pets [get]
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

func listMineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "missing X-User-ID", http.StatusUnauthorized)
			return
		}
		items, err := svc.ListByOwner(r.Context(), uid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "lostPetID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// markFoundHandler godoc
// @Summary  Marca la mascota como encontrada (borra el reporte; solo el dueño)
// @Tags     lost-pets
// @Param    X-User-ID header string true "usuario simulado"
// @Param    lostPetID path string true "id"
// @Success  204
// @Failure  403 {string} string
// @Router   /lost-pets/{lostPetID} [delete]
func markFoundHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "missing X-User-ID", http.StatusUnauthorized)
			return
		}
		if err := svc.MarkFound(r.Context(), chi.URLParam(r, "lostPetID"), uid); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// matchesHandler godoc
// @Summary  Ranking de avistamientos para una mascota perdida
// @Tags     lost-pets
// @Produce  json
// @Param    lostPetID path string true "id"
// @Success  200 {array} matching.ScoredMatch
// @Router   /lost-pets/{lostPetID}/matches [get]
func matchesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Matches(r.Context(), chi.URLParam(r, "lostPetID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// zoneHandler godoc
// @Summary  Radio de búsqueda recomendado
// @Tags     lost-pets
// @Produce  json
// @Param    lostPetID path string true "id"
// @Success  200 {object} searchzone.Zone
// @Router   /lost-pets/{lostPetID}/zone [get]
func zoneHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		z, err := svc.Zone(r.Context(), chi.URLParam(r, "lostPetID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, z)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, reports.ErrFutureTimestamp):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "lost pet not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
