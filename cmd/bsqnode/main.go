package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/genesis"
	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/node"
	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/snapshot"
	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/state"
	"github.com/goodnatureofminers/bsqledger-backend/internal/export"
	chrepo "github.com/goodnatureofminers/bsqledger-backend/internal/export/clickhouse"
	"github.com/goodnatureofminers/bsqledger-backend/internal/metrics"
	"github.com/goodnatureofminers/bsqledger-backend/internal/transport"
)

type config struct {
	Network         model.Network `long:"network" env:"BSQ_LEDGER_NETWORK" description:"network name" required:"true"`
	RPCURL          string        `long:"rpc-url" env:"BSQ_LEDGER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser         string        `long:"rpc-user" env:"BSQ_LEDGER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword     string        `long:"rpc-password" env:"BSQ_LEDGER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"BSQ_LEDGER_CLICKHOUSE_DSN" description:"ClickHouse DSN, export is disabled when empty"`
	SnapshotPath    string        `long:"snapshot-path" env:"BSQ_LEDGER_SNAPSHOT_PATH" description:"path to the snapshot database file" default:"data/snapshots.db"`
	SnapshotGrid    int32         `long:"snapshot-grid" env:"BSQ_LEDGER_SNAPSHOT_GRID" description:"snapshot grid interval in blocks" default:"10"`
	SnapshotKeep    int           `long:"snapshot-keep" env:"BSQ_LEDGER_SNAPSHOT_KEEP" description:"number of persisted snapshots to keep" default:"20"`
	BackfillWorkers int           `long:"backfill-workers" env:"BSQ_LEDGER_BACKFILL_WORKERS" description:"workers for the export backfill" default:"4"`
	APIAddr         string        `long:"api-addr" env:"BSQ_LEDGER_API_ADDR" description:"address for the explorer API server" default:":8080"`
	MetricsAddr     string        `long:"metrics-addr" env:"BSQ_LEDGER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("bsq ledger node failed", zap.Error(err))
	}
	logger.Info("shutdown complete")
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	genesisInfo, ok := genesis.ForNetwork(cfg.Network)
	if !ok {
		return fmt.Errorf("unknown network %q", cfg.Network)
	}

	svc := state.NewService(genesisInfo, logger.Named("ledger"))
	svc.AddListener(metrics.NewLedger(cfg.Network))

	store, err := snapshot.OpenStore(cfg.SnapshotPath)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close snapshot store", zap.Error(err))
		}
	}()

	manager, err := snapshot.NewManager(store, svc, cfg.SnapshotGrid, cfg.SnapshotKeep, logger.Named("snapshot"))
	if err != nil {
		return fmt.Errorf("init snapshot manager: %w", err)
	}
	svc.AddListener(manager)

	// Start before restoring so the genesis height only applies to a fresh
	// ledger and never overrides a restored snapshot's height.
	svc.Start()

	snap, err := manager.RestoreLatest()
	switch {
	case err == nil:
		svc.ApplySnapshot(snap)
		logger.Info("restored ledger from snapshot", zap.Int32("height", svc.ChainHeight()))
	case errors.Is(err, snapshot.ErrNoSnapshot):
		logger.Info("no snapshot found, starting from genesis", zap.Int32("genesis_height", genesisInfo.BlockHeight))
	default:
		return err
	}

	if cfg.ClickhouseDSN != "" {
		repo, err := chrepo.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init export repository: %w", err)
		}
		if err := export.Backfill(ctx, svc, repo, cfg.Network, cfg.BackfillWorkers, logger.Named("backfill")); err != nil {
			return fmt.Errorf("export backfill: %w", err)
		}
		exporter, err := export.NewExporter(repo, cfg.Network, export.DefaultConfig(), logger.Named("export"))
		if err != nil {
			return fmt.Errorf("init exporter: %w", err)
		}
		exporter.Start(ctx)
		defer exporter.Stop()
		svc.AddListener(exporter)
	}

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	source := node.NewRPCSource(rpcClient, metrics.NewRPCClient(cfg.Network))

	parser, err := node.NewGenesisParser(genesisInfo, svc)
	if err != nil {
		return fmt.Errorf("init block parser: %w", err)
	}

	follower, err := node.NewFollowerService(source, parser, svc, manager, metrics.NewFollower(cfg.Network), logger.Named("follower"))
	if err != nil {
		return fmt.Errorf("init follower: %w", err)
	}

	startAPIServer(ctx, cfg.APIAddr, transport.NewExplorerHandler(svc, logger.Named("api")), logger)

	return follower.Run(ctx)
}

func startAPIServer(ctx context.Context, addr string, handler *transport.ExplorerHandler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(handler.Router()),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting explorer API server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("explorer API server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown explorer API server", zap.Error(err))
		}
	}()
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}

	return rpcclient.New(cfg, nil)
}
