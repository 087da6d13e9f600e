package handlers

import (
	"net/http"

	"github.com/jordanwest/ledgerpane/pkg/engine"
	"github.com/jordanwest/ledgerpane/pkg/grid"
	"github.com/jordanwest/ledgerpane/pkg/report"
)

// ReportsHandler generates report snapshots and, when a surface is
// configured, renders them onto it.
type ReportsHandler struct {
	Engine *engine.Engine
	// Surface is optional: when nil, the handler only returns the report
	// document and its grid plan, and the UI applies the plan to the host
	// document itself.
	Surface grid.Surface
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(e *engine.Engine, surface grid.Surface) *ReportsHandler {
	return &ReportsHandler{Engine: e, Surface: surface}
}

// GenerateReport builds a fresh report snapshot and its grid plan. A render
// failure is reported in the response but does not fail the request: the
// report itself is already valid and cached.
func (h *ReportsHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Engine.GenerateReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	plan := report.PlanGrid(*rep)

	data := map[string]any{
		"report": rep,
		"plan":   plan,
	}
	if h.Surface != nil {
		if err := grid.Render(h.Surface, plan); err != nil {
			data["render_error"] = err.Error()
		}
	}

	writeData(w, http.StatusOK, data)
}
