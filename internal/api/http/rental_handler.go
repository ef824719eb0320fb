package http

import (
	"net/http"
	"time"

	"drivesync-backend/internal/domain"
	"drivesync-backend/internal/service"
	"drivesync-backend/internal/utils"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type quoteRequest struct {
	CarID     int32     `json:"car_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Mode      string    `json:"mode"`
}

type quoteResponse struct {
	Car   *domain.Car       `json:"car"`
	Quote utils.RentalQuote `json:"quote"`
}

// Quote prices a prospective booking without persisting anything. The
// booking wizard calls this as the user adjusts times and mode.
func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	quote, car, err := h.rentalSvc.Quote(r.Context(), req.CarID, req.StartTime, req.EndTime, domain.RentalMode(req.Mode))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quoteResponse{Car: car, Quote: quote})
}

type createBookingRequest struct {
	CarID            int32     `json:"car_id"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Mode             string    `json:"mode"`
	DeliveryLocation string    `json:"delivery_location"`
}

type bookingResponse struct {
	Rental          *domain.Rental  `json:"rental"`
	Payment         *domain.Payment `json:"payment,omitempty"`
	PaymentRecorded bool            `json:"payment_recorded"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	result, err := h.rentalSvc.CreateBooking(r.Context(), claims.UserID, req.CarID, req.StartTime, req.EndTime, domain.RentalMode(req.Mode), req.DeliveryLocation)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, bookingResponse{
		Rental:          result.Rental,
		Payment:         result.Payment,
		PaymentRecorded: result.PaymentRecorded,
	})
}

func (h *RentalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rentals, err := h.rentalSvc.ListMyRentals(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

type updateBookingRequest struct {
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Mode             string    `json:"mode"`
	DeliveryLocation string    `json:"delivery_location"`
}

func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rentalID, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req updateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	rental, err := h.rentalSvc.UpdateBooking(r.Context(), claims.UserID, rentalID, req.StartTime, req.EndTime, domain.RentalMode(req.Mode), req.DeliveryLocation)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

type carChangeRequest struct {
	NewCarID int32 `json:"new_car_id"`
}

// RequestCarChange files a change request that an admin later approves
// or rejects. The rental keeps its current car until approval.
func (h *RentalHandler) RequestCarChange(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rentalID, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req carChangeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.NewCarID <= 0 {
		respondError(w, http.StatusBadRequest, "new_car_id is required")
		return
	}

	cr, err := h.rentalSvc.RequestCarChange(r.Context(), claims.UserID, rentalID, req.NewCarID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, cr)
}
