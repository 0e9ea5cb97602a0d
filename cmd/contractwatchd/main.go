package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	contractsv1 "github.com/contractwatch/contractwatch/gen/proto/contracts/v1"
	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/export"
	"github.com/contractwatch/contractwatch/internal/extract"
	"github.com/contractwatch/contractwatch/internal/jobs"
	"github.com/contractwatch/contractwatch/internal/limits"
	"github.com/contractwatch/contractwatch/internal/llm/anthropic"
	"github.com/contractwatch/contractwatch/internal/merge"
	"github.com/contractwatch/contractwatch/internal/pipeline"
	"github.com/contractwatch/contractwatch/internal/repository"
	"github.com/contractwatch/contractwatch/internal/server"
	"github.com/contractwatch/contractwatch/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	var blobs storage.BlobStore
	if cfg.Storage.Endpoint != "" {
		ms, err := storage.NewMinioStore(cfg.Storage)
		if err != nil {
			logger.Error("minio store init failed", "endpoint", cfg.Storage.Endpoint, "error", err)
			os.Exit(1)
		}
		if err := ms.EnsureBucket(ctx); err != nil {
			logger.Error("bucket check failed", "bucket", cfg.Storage.Bucket, "error", err)
			os.Exit(1)
		}
		blobs = ms
		logger.Info("using minio blob store", "endpoint", cfg.Storage.Endpoint, "bucket", cfg.Storage.Bucket)
	} else {
		fs, err := storage.NewFSStore(cfg.Storage.LocalDir)
		if err != nil {
			logger.Error("filesystem store init failed", "dir", cfg.Storage.LocalDir, "error", err)
			os.Exit(1)
		}
		blobs = fs
		logger.Info("using filesystem blob store", "dir", cfg.Storage.LocalDir)
	}

	contracts := repository.NewContractRepository(entc, logger)
	docs := repository.NewDocumentRepository(entc, logger)
	orgs := repository.NewOrganizationRepository(entc, logger)
	limiter := limits.NewLimiter(orgs, logger)
	locker := repository.NewAdvisoryLocker(pool, logger)

	model := anthropic.NewClient(anthropic.Config{
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
		Timeout:   cfg.LLM.Timeout,
	}, logger)

	runner := jobs.NewRunner(jobs.RunnerConfig{
		Workers:     cfg.Jobs.Workers,
		MaxAttempts: cfg.Jobs.MaxAttempts,
		QueueDepth:  cfg.Jobs.QueueDepth,
	}, logger)

	coordinator := pipeline.NewCoordinator(docs, contracts, blobs, extract.NewExtractor(), locker, limiter, runner, logger)
	orchestrator := pipeline.NewOrchestrator(contracts, docs, limiter, model, merge.NewEngine(logger), logger)
	runner.SetHandler(pipeline.NewService(coordinator, orchestrator))
	runner.Start(ctx)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	exporter := export.NewService(contracts, logger)
	contractsv1.RegisterContractsServiceServer(grpcServer, server.NewContractsService(contracts, docs, exporter, runner, logger))
	contractsv1.RegisterDocumentsServiceServer(grpcServer, server.NewDocumentsService(contracts, docs, blobs, runner, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := runner.Shutdown(drainCtx); err != nil {
		logger.Error("job runner drain timed out", "error", err)
	}
	logger.Info("stopped")
}
