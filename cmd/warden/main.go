package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/promptwarden/promptwarden/internal/cache"
	"github.com/promptwarden/promptwarden/internal/config"
	"github.com/promptwarden/promptwarden/internal/corpus"
	"github.com/promptwarden/promptwarden/internal/detect"
	"github.com/promptwarden/promptwarden/internal/heuristics"
	"github.com/promptwarden/promptwarden/internal/logger"
	"github.com/promptwarden/promptwarden/internal/redteam"
	"github.com/promptwarden/promptwarden/internal/rules"
	"github.com/promptwarden/promptwarden/internal/server"
	"github.com/promptwarden/promptwarden/internal/store"
	"github.com/promptwarden/promptwarden/internal/websocket"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		mode        = flag.String("mode", "serve", "Mode: scan, redteam, corpus, or serve")
		scanText    = flag.String("text", "", "Prompt text to scan (scan mode)")
		corpusPath  = flag.String("corpus", "", "Labeled corpus file (corpus mode)")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("promptwarden %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting promptwarden",
		zap.String("version", version),
		zap.String("mode", *mode))

	registry := heuristics.NewRegistry(nil)
	evaluator := detect.NewEvaluator(registry, log.WithComponent("detect").Logger)

	var resultCache detect.ResultCache
	var scanCache *cache.ScanCache
	if cfg.Cache.Enabled {
		scanCache, err = cache.NewScanCache(cfg.Cache, log.WithComponent("cache").Logger)
		if err != nil {
			log.Fatal("Failed to initialize scan cache", zap.Error(err))
		}
		defer scanCache.Close()
		resultCache = scanCache
	}
	scanner := detect.NewScanner(evaluator, resultCache, log.WithComponent("detect").Logger)

	set, err := loadRules(cfg, evaluator)
	if err != nil {
		log.Fatal("Failed to load rules", zap.Error(err))
	}
	provider := server.NewRuleProvider(set)

	if cfg.Rules.Path != "" && cfg.Rules.Watch {
		stop, err := rules.Watch(cfg.Rules.Path, log.WithComponent("rules").Logger, func(file *rules.File) {
			if err := evaluator.ValidateRules(file.Rules); err != nil {
				log.Error("Rejected reloaded rule file", zap.Error(err))
				return
			}
			provider.Swap(file.Rules)
			log.Info("Rule file reloaded", zap.Int("rules", len(file.Rules)))
		})
		if err != nil {
			log.Fatal("Failed to watch rule file", zap.Error(err))
		}
		defer stop()
	}

	switch *mode {
	case "scan":
		runScan(log, scanner, provider, cfg, *scanText)
	case "redteam":
		runRedTeam(log, scanner, provider, cfg)
	case "corpus":
		runCorpus(log, scanner, provider, cfg, *corpusPath)
	case "serve":
		runServe(log, scanner, provider, cfg)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}

func loadRules(cfg *config.Config, evaluator *detect.Evaluator) ([]rules.DetectionRule, error) {
	if cfg.Rules.Path == "" {
		return rules.DefaultRules(), nil
	}
	file, err := rules.LoadFile(cfg.Rules.Path)
	if err != nil {
		return nil, err
	}
	if err := evaluator.ValidateRules(file.Rules); err != nil {
		return nil, err
	}
	return file.Rules, nil
}

func runScan(log *logger.Logger, scanner *detect.Scanner, provider *server.RuleProvider, cfg *config.Config, text string) {
	if text == "" {
		fmt.Fprintln(os.Stderr, "scan mode requires -text")
		os.Exit(1)
	}

	result, err := scanner.Scan(context.Background(), text, provider.Current(), cfg.Detector.Threshold)
	if err != nil {
		log.Fatal("Scan failed", zap.Error(err))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.Encode(result)

	if result.IsPositive {
		os.Exit(2)
	}
}

func runRedTeam(log *logger.Logger, scanner *detect.Scanner, provider *server.RuleProvider, cfg *config.Config) {
	backend, err := redteam.NewBackend(cfg.RedTeam, log.WithComponent("redteam").Logger)
	if err != nil {
		log.Fatal("Failed to create generation backend", zap.Error(err))
	}

	engine := redteam.NewEngine(scanner, backend, cfg.RedTeam, log.WithComponent("redteam").Logger,
		func(p redteam.Progress) {
			log.LogRedTeamProgress(string(p.State), p.Completed, p.Total, p.Message)
		})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	run, err := engine.Run(ctx, provider.Current(), cfg.Detector.Threshold)
	if err != nil {
		log.Fatal("Red-team run failed", zap.Error(err))
	}

	if cfg.Store.Enabled {
		runStore, err := store.NewStore(cfg.Store, log.WithComponent("store").Logger)
		if err != nil {
			log.Error("Failed to open run store", zap.Error(err))
		} else {
			defer runStore.Close()
			saveCtx, saveCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer saveCancel()
			if err := runStore.SaveRun(saveCtx, run); err != nil {
				log.Error("Failed to archive run", zap.Error(err))
			}
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.Encode(run)
}

func runCorpus(log *logger.Logger, scanner *detect.Scanner, provider *server.RuleProvider, cfg *config.Config, path string) {
	if path == "" {
		path = cfg.Corpus.Path
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "corpus mode requires -corpus or corpus.path in config")
		os.Exit(1)
	}

	benchmark := corpus.NewBenchmark(scanner, cfg.Corpus, log.WithComponent("corpus").Logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	result, err := benchmark.Run(ctx, path, provider.Current(), cfg.Detector.Threshold)
	if err != nil {
		log.Fatal("Corpus benchmark failed", zap.Error(err))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.Encode(result)
}

func runServe(log *logger.Logger, scanner *detect.Scanner, provider *server.RuleProvider, cfg *config.Config) {
	backend, err := redteam.NewBackend(cfg.RedTeam, log.WithComponent("redteam").Logger)
	if err != nil {
		log.Fatal("Failed to create generation backend", zap.Error(err))
	}

	var runStore *store.Store
	if cfg.Store.Enabled {
		runStore, err = store.NewStore(cfg.Store, log.WithComponent("store").Logger)
		if err != nil {
			log.Fatal("Failed to initialize run store", zap.Error(err))
		}
		defer runStore.Close()
	}

	var srv *server.Server
	engine := redteam.NewEngine(scanner, backend, cfg.RedTeam, log.WithComponent("redteam").Logger,
		func(p redteam.Progress) {
			log.LogRedTeamProgress(string(p.State), p.Completed, p.Total, p.Message)
			if srv != nil {
				srv.Hub().BroadcastEvent(websocket.Event{
					Type:      websocket.EventTypeRedTeamProgress,
					Timestamp: time.Now(),
					Data:      p,
				})
			}
		})

	srv = server.New(cfg, log, scanner, provider, engine, runStore)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Error("Server error", zap.Error(err))
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			log.Error("Failed to shutdown server gracefully", zap.Error(err))
			os.Exit(1)
		}
		log.Info("Server shutdown complete")
	}
}
