// Simulate runs the prediction pipeline directly against the platform,
// without the conversational layer, and prints the analysis as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/adapters/iqapi"
	"github.com/iqinsightlabs/iq-agent-analytics/internal/config"
	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/service"
	"github.com/iqinsightlabs/iq-agent-analytics/pkg/tools"
)

func main() {
	_ = godotenv.Load()

	ticker := flag.String("ticker", "", "agent token ticker to analyze")
	userID := flag.String("user", "", "restrict the analysis to one user's trades")
	depth := flag.Int("depth", 0, "feed pages to analyze (default from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *depth == 0 {
		*depth = cfg.AnalysisDepth
	}

	client := iqapi.NewClient(cfg.BaseURL)
	analysis := service.NewAnalysisService(iqapi.NewTransactionFeed(client))
	svc := tools.NewService(client, analysis, nil)

	log.Printf("Analyzing %d pages (ticker=%q, user=%q)...", *depth, *ticker, *userID)
	result, err := svc.PredictNextActions(context.Background(), tools.PredictParams{
		Ticker:        *ticker,
		UserID:        *userID,
		AnalysisDepth: *depth,
	})
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
}
