package http

import (
	"net/http"

	"drivesync-backend/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

func (h *AdminHandler) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.adminSvc.ListPendingRequests(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (h *AdminHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	cr, err := h.adminSvc.ApproveRequest(r.Context(), requestID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cr)
}

func (h *AdminHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	cr, err := h.adminSvc.RejectRequest(r.Context(), requestID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cr)
}
