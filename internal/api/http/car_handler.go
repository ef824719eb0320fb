package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"drivesync-backend/internal/domain"
	"drivesync-backend/internal/images"
	"drivesync-backend/internal/service"
)

type CarHandler struct {
	carSvc service.CarService
	cache  *images.Cache
}

func NewCarHandler(carSvc service.CarService, cache *images.Cache) *CarHandler {
	return &CarHandler{carSvc: carSvc, cache: cache}
}

// List returns all cars annotated with whether the caller may select
// them. With ?editing_rental_id= the car on that rental stays
// selectable even when it is currently in use.
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var editingRentalID int32
	if raw := r.URL.Query().Get("editing_rental_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid editing_rental_id")
			return
		}
		editingRentalID = int32(id)
	}

	listings, err := h.carSvc.ListCars(r.Context(), claims.UserID, editingRentalID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	for _, l := range listings {
		h.cache.Prefetch(l.ID, l.ImgURL)
	}
	respondJSON(w, http.StatusOK, listings)
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	carID, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid car id")
		return
	}

	car, err := h.carSvc.GetCar(r.Context(), carID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, car)
}

// Image serves the cached image for a car, fetching it on first access.
func (h *CarHandler) Image(w http.ResponseWriter, r *http.Request) {
	carID, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid car id")
		return
	}

	car, err := h.carSvc.GetCar(r.Context(), carID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	f, err := h.cache.Open(r.Context(), car.ID, car.ImgURL)
	if err != nil {
		if errors.Is(err, images.ErrNotCached) {
			respondError(w, http.StatusNotFound, "no image for car")
			return
		}
		respondError(w, http.StatusBadGateway, "image fetch failed")
		return
	}
	defer f.Close()

	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, f)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus is the admin operation behind the car status panel.
func (h *CarHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	carID, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid car id")
		return
	}

	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	car, err := h.carSvc.SetStatus(r.Context(), carID, domain.CarStatus(req.Status))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, car)
}

func pathID(r *http.Request, key string) (int32, error) {
	raw := mux.Vars(r)[key]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return int32(id), nil
}
