package notifications

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-finder/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/me/notifications", func(nr chi.Router) {
		nr.Get("/", listHandler(svc))
		nr.Delete("/", clearHandler(svc))
		nr.Post("/{notificationID}/read", markReadHandler(svc))
	})
}

type inboxResponse struct {
	Unread int            `json:"unread"`
	Items  []Notification `json:"items"`
}

// listHandler godoc
// @Summary  Inbox del usuario (más nuevo primero)
// @Tags     notifications
// @Produce  json
// @Param    X-User-ID header string true "usuario simulado"
// @Success  200 {object} inboxResponse
// @Router   /me/notifications [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "missing X-User-ID", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context(), uid)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		unread, err := svc.UnreadCount(r.Context(), uid)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, inboxResponse{Unread: unread, Items: items})
	}
}

// markReadHandler godoc
// @Summary  Marca una notificación como leída
// @Tags     notifications
// @Param    X-User-ID header string true "usuario simulado"
// @Param    notificationID path string true "id"
// @Success  204
// @Router   /me/notifications/{notificationID}/read [post]
func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "missing X-User-ID", http.StatusUnauthorized)
			return
		}

		err := svc.MarkRead(r.Context(), uid, chi.URLParam(r, "notificationID"))
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, ErrNotFound):
			http.Error(w, "notification not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// clearHandler godoc
// @Summary  Vacía el inbox
// @Tags     notifications
// @Produce  json
// @Param    X-User-ID header string true "usuario simulado"
// @Success  200 {object} map[string]int
// @Router   /me/notifications [delete]
func clearHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "missing X-User-ID", http.StatusUnauthorized)
			return
		}

		n, err := svc.Clear(r.Context(), uid)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"cleared": n})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
