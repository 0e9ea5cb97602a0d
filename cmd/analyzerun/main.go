// analyzerun runs one full contract analysis synchronously. Useful for
// re-running a contract after a failure without going through the API.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/gen/ent"
	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/limits"
	"github.com/contractwatch/contractwatch/internal/llm"
	"github.com/contractwatch/contractwatch/internal/llm/anthropic"
	"github.com/contractwatch/contractwatch/internal/merge"
	"github.com/contractwatch/contractwatch/internal/pipeline"
	repo "github.com/contractwatch/contractwatch/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "analyzerun <contract-id-uuid>")
		os.Exit(2)
	}
	contractID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid contract id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	defer pool.Close()

	contracts := repo.NewContractRepository(entc, logger)
	docs := repo.NewDocumentRepository(entc, logger)
	orgs := repo.NewOrganizationRepository(entc, logger)
	limiter := limits.NewLimiter(orgs, logger)

	model := anthropic.NewClient(anthropic.Config{
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
		Timeout:   cfg.LLM.Timeout,
	}, logger)

	o := pipeline.NewOrchestrator(contracts, docs, limiter, model, merge.NewEngine(logger), logger)

	start := time.Now()
	err = o.AnalyzeContract(ctx, contractID, llm.ModeFull, nil)
	dur := time.Since(start)

	if err != nil {
		logger.Error("analysis failed", "contract_id", contractID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}
	logger.Info("analysis OK", "contract_id", contractID, "duration_ms", dur.Milliseconds())
}
