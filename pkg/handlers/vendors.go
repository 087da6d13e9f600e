package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jordanwest/ledgerpane/pkg/engine"
	"github.com/jordanwest/ledgerpane/pkg/models"
)

// VendorsHandler holds the dependencies for vendor-related handlers.
type VendorsHandler struct {
	Engine *engine.Engine
}

// NewVendorsHandler creates a new VendorsHandler.
func NewVendorsHandler(e *engine.Engine) *VendorsHandler {
	return &VendorsHandler{Engine: e}
}

// ListVendors refreshes and returns the vendor collection.
func (h *VendorsHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.FetchVendors(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]any{"vendors": h.Engine.Cache().Vendors()})
}

type createVendorBody struct {
	Name            string `json:"name"`
	PaymentSchedule string `json:"payment_schedule"`
}

// CreateVendor registers a new vendor.
func (h *VendorsHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var body createVendorBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	created, err := h.Engine.CreateVendor(r.Context(), body.Name, models.PaymentSchedule(body.PaymentSchedule))
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, map[string]any{"vendor": created})
}

type renameVendorBody struct {
	Name string `json:"name"`
}

// RenameVendor updates a vendor's display name.
func (h *VendorsHandler) RenameVendor(w http.ResponseWriter, r *http.Request) {
	var body renameVendorBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	if err := h.Engine.RenameVendor(r.Context(), chi.URLParam(r, "vendorID"), body.Name); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "vendor updated"})
}

// DeleteVendor removes a vendor, or deactivates it when payments still
// reference it.
func (h *VendorsHandler) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.DeleteVendor(r.Context(), chi.URLParam(r, "vendorID")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "vendor removed"})
}
