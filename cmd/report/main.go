// Command report fetches a ledger snapshot and writes the financial report
// into an xlsx workbook, using the same projector and grid plan the bridge
// serves over HTTP.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jordanwest/ledgerpane/pkg/cache"
	"github.com/jordanwest/ledgerpane/pkg/config"
	"github.com/jordanwest/ledgerpane/pkg/engine"
	"github.com/jordanwest/ledgerpane/pkg/grid"
	"github.com/jordanwest/ledgerpane/pkg/grid/xlsx"
	"github.com/jordanwest/ledgerpane/pkg/ledger"
	"github.com/jordanwest/ledgerpane/pkg/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	client := ledger.NewHTTPClient(cfg.LedgerBaseURL, ledger.StaticToken(cfg.LedgerToken))
	eng := engine.New(client, cache.New(), logger)

	rep, err := eng.GenerateReport(context.Background())
	if err != nil {
		log.Fatalf("failed to generate report: %v", err)
	}

	workbook, err := xlsx.New(cfg.ReportSheet)
	if err != nil {
		log.Fatalf("failed to create workbook: %v", err)
	}

	plan := report.PlanGrid(*rep)
	if err := grid.Render(workbook, plan); err != nil {
		// The report itself is fine; only the rendering surface failed.
		log.Fatalf("report display failed: %v", err)
	}

	if err := workbook.Save(cfg.ReportOutput); err != nil {
		log.Fatalf("failed to save workbook: %v", err)
	}

	logger.Info("report written",
		"path", cfg.ReportOutput,
		"accounts", len(rep.Accounts),
		"payments", len(rep.Payments),
	)
}
