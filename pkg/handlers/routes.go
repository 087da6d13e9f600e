package handlers

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/jordanwest/ledgerpane/pkg/engine"
	"github.com/jordanwest/ledgerpane/pkg/grid"
)

// serialized admits one request at a time. The engine and its cache are
// single-threaded and carry no locks, while the server runs every request
// on its own goroutine, so the boundary between the two must serialize.
func serialized(mu *sync.Mutex) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			next.ServeHTTP(w, r)
		})
	}
}

// Routes mounts the bridge API on a chi router. The UI fires its fetches in
// parallel on load; serializing here lets them all succeed instead of
// tripping the engine's busy guard.
func Routes(r chi.Router, e *engine.Engine, surface grid.Surface) {
	payments := NewPaymentsHandler(e)
	vendors := NewVendorsHandler(e)
	reports := NewReportsHandler(e, surface)

	var mu sync.Mutex
	r.Route("/api", func(r chi.Router) {
		r.Use(serialized(&mu))

		r.Get("/accounts", func(w http.ResponseWriter, req *http.Request) {
			if err := e.FetchAccounts(req.Context()); err != nil {
				writeError(w, err)
				return
			}
			writeData(w, http.StatusOK, map[string]any{"accounts": e.Cache().Accounts()})
		})

		r.Get("/payments", payments.ListPayments)
		r.Post("/payments", payments.CreatePayment)
		r.Post("/payments/{paymentID}/confirm", payments.ConfirmPayment)
		r.Delete("/payments/{paymentID}", payments.DeletePayment)

		r.Get("/vendors", vendors.ListVendors)
		r.Post("/vendors", vendors.CreateVendor)
		r.Put("/vendors/{vendorID}", vendors.RenameVendor)
		r.Delete("/vendors/{vendorID}", vendors.DeleteVendor)

		r.Get("/report", reports.GenerateReport)
	})
}
