package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ledgerline/forecast/internal/config"
	"github.com/ledgerline/forecast/internal/models"
	"github.com/ledgerline/forecast/internal/service"
)

// scenario is the input document supplied by the surrounding CRUD layer:
// already-validated records plus the projection parameters.
type scenario struct {
	Position              models.CashPosition          `json:"position"`
	HorizonDays           int                          `json:"horizon_days"`
	Year                  int                          `json:"year"`
	CommissionRatePercent float64                      `json:"commission_rate_percent"`
	Obligations           []models.RecurringObligation `json:"obligations"`
	DebtPlans             []models.DebtInstallmentPlan `json:"debt_plans"`
	SalesCommitments      []models.SalesCommitment     `json:"sales_commitments"`
}

type report struct {
	Simulation models.SimulationResult `json:"simulation"`
	Skipped    []models.SkippedItem    `json:"skipped,omitempty"`
	Annual     models.YearGapReport    `json:"annual"`
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a scenario JSON file")
	flag.Parse()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	if *scenarioPath == "" {
		logger.Fatal("Missing -scenario flag")
	}
	raw, err := os.ReadFile(*scenarioPath)
	if err != nil {
		logger.Fatalf("Failed to read scenario: %v", err)
	}
	var sc scenario
	if err := json.Unmarshal(raw, &sc); err != nil {
		logger.Fatalf("Failed to parse scenario: %v", err)
	}

	svc := service.NewService(logger, cfg)

	simulation, skipped, err := svc.Forecast(sc.Position, sc.Obligations, sc.DebtPlans, sc.HorizonDays)
	if err != nil {
		logger.Fatalf("Forecast failed: %v", err)
	}

	year := sc.Year
	if year == 0 {
		year = sc.Position.AsOfDate.Year()
	}
	annual, err := svc.AnnualReport(sc.Obligations, sc.DebtPlans, sc.SalesCommitments, year, sc.CommissionRatePercent)
	if err != nil {
		logger.Fatalf("Annual report failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report{Simulation: simulation, Skipped: skipped, Annual: annual}); err != nil {
		logger.Fatalf("Failed to write report: %v", err)
	}
}
