// Package handlers exposes the engine over HTTP for the taskpane UI. The
// response envelope mirrors the ledger service's own shape so the UI can
// share its decoding path.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jordanwest/ledgerpane/pkg/engine"
	"github.com/jordanwest/ledgerpane/pkg/ledger"
)

// Response is the uniform envelope for bridge responses.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Success: true, Data: data})
}

// writeError maps engine errors onto HTTP statuses. Validation failures are
// 400s with the offending field so the UI can highlight it; business
// rejections are 422s carrying the transaction detail; everything reaching
// the service boundary and failing there is a 502.
func writeError(w http.ResponseWriter, err error) {
	var verr *engine.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, Response{
			Error: verr.Message,
			Data:  map[string]string{"field": verr.Field},
		})
		return
	}

	var rejection *ledger.RejectionError
	if errors.As(err, &rejection) {
		resp := Response{Error: rejection.Message}
		if rejection.Detail != nil {
			resp.Data = rejection.Detail
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	if errors.Is(err, engine.ErrBusy) {
		writeJSON(w, http.StatusConflict, Response{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusBadGateway, Response{Error: err.Error()})
}
