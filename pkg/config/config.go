// Package config loads engine configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries everything the commands need to wire the engine.
type Config struct {
	// LedgerBaseURL is the root URL of the remote ledger service.
	LedgerBaseURL string
	// LedgerToken is the opaque bearer credential supplied by the session
	// collaborator. The engine never inspects it.
	LedgerToken string
	// HTTPPort is the bridge server's listen port.
	HTTPPort string
	// AllowedOrigins are the origins the bridge accepts cross-origin
	// requests from (the taskpane UI host).
	AllowedOrigins []string
	// ReportSheet is the sheet name the report CLI writes into.
	ReportSheet string
	// ReportOutput is the workbook path the report CLI saves to.
	ReportOutput string
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored but not required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	// BindEnv only errors on an empty key, which these are not.
	_ = v.BindEnv("ledger.base_url", "LEDGER_BASE_URL")
	_ = v.BindEnv("ledger.token", "LEDGER_TOKEN")
	_ = v.BindEnv("http.port", "HTTP_PORT")
	_ = v.BindEnv("http.allowed_origins", "ALLOWED_ORIGINS")
	_ = v.BindEnv("report.sheet", "REPORT_SHEET")
	_ = v.BindEnv("report.output", "REPORT_OUTPUT")

	v.SetDefault("http.port", "8080")
	v.SetDefault("http.allowed_origins", []string{"https://localhost:3000"})
	v.SetDefault("report.sheet", "Financial Report")
	v.SetDefault("report.output", "report.xlsx")

	cfg := &Config{
		LedgerBaseURL:  v.GetString("ledger.base_url"),
		LedgerToken:    v.GetString("ledger.token"),
		HTTPPort:       v.GetString("http.port"),
		AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		ReportSheet:    v.GetString("report.sheet"),
		ReportOutput:   v.GetString("report.output"),
	}

	if cfg.LedgerBaseURL == "" {
		return nil, fmt.Errorf("LEDGER_BASE_URL is not set")
	}
	return cfg, nil
}
