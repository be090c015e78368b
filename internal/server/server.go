// Package server exposes the detector over HTTP: scan requests, rule set
// inspection, red-team runs and a WebSocket feed of live events. The
// detection core stays usable as a plain library; this surface is optional.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/promptwarden/promptwarden/internal/config"
	"github.com/promptwarden/promptwarden/internal/detect"
	"github.com/promptwarden/promptwarden/internal/logger"
	"github.com/promptwarden/promptwarden/internal/redteam"
	"github.com/promptwarden/promptwarden/internal/rules"
	"github.com/promptwarden/promptwarden/internal/store"
	"github.com/promptwarden/promptwarden/internal/websocket"
)

// RuleProvider hands out the current rule set. Swap is called by the rule
// file watcher on hot reload; Current is safe for concurrent readers.
type RuleProvider struct {
	mu     sync.RWMutex
	set    []rules.DetectionRule
	onSwap func([]rules.DetectionRule)
}

// NewRuleProvider seeds a provider with an initial rule set.
func NewRuleProvider(set []rules.DetectionRule) *RuleProvider {
	return &RuleProvider{set: set}
}

// Current returns the active rule set.
func (p *RuleProvider) Current() []rules.DetectionRule {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.set
}

// Swap replaces the active rule set.
func (p *RuleProvider) Swap(set []rules.DetectionRule) {
	p.mu.Lock()
	p.set = set
	onSwap := p.onSwap
	p.mu.Unlock()
	if onSwap != nil {
		onSwap(set)
	}
}

// SetOnSwap registers a callback invoked after every Swap.
func (p *RuleProvider) SetOnSwap(fn func([]rules.DetectionRule)) {
	p.mu.Lock()
	p.onSwap = fn
	p.mu.Unlock()
}

// Server is the HTTP API surface.
type Server struct {
	config   *config.Config
	logger   *logger.Logger
	scanner  *detect.Scanner
	provider *RuleProvider
	engine   *redteam.Engine
	runStore *store.Store
	router   *mux.Router
	server   *http.Server
	wsHub    *websocket.Hub

	runMu   sync.Mutex
	lastRun *redteam.Run
}

// New creates a new server instance. runStore may be nil when persistence
// is disabled.
func New(cfg *config.Config, log *logger.Logger, scanner *detect.Scanner, provider *RuleProvider, engine *redteam.Engine, runStore *store.Store) *Server {
	wsHub := websocket.NewHub(log.WithComponent("websocket").Logger)
	router := mux.NewRouter()

	s := &Server{
		config:   cfg,
		logger:   log.WithComponent("server"),
		scanner:  scanner,
		provider: provider,
		engine:   engine,
		runStore: runStore,
		router:   router,
		wsHub:    wsHub,
	}
	s.setupRoutes()

	provider.SetOnSwap(func(set []rules.DetectionRule) {
		wsHub.BroadcastEvent(websocket.Event{
			Type:      websocket.EventTypeRulesReload,
			Timestamp: time.Now(),
			Data: websocket.RulesReloadEvent{
				RuleCount:   len(set),
				Fingerprint: rules.Fingerprint(set),
			},
		})
	})

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/info", s.handleInfo).Methods("GET")

	api := s.router.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/scan", s.handleScan).Methods("POST")
	api.HandleFunc("/rules", s.handleListRules).Methods("GET")
	api.HandleFunc("/redteam/runs", s.handleStartRun).Methods("POST")
	api.HandleFunc("/redteam/runs", s.handleListRuns).Methods("GET")
	api.HandleFunc("/redteam/runs/{id}", s.handleGetRun).Methods("GET")
	api.HandleFunc("/redteam/status", s.handleRunStatus).Methods("GET")

	// WebSocket endpoint for live scan and red-team events
	s.router.HandleFunc("/ws", s.wsHub.HandleWebSocket).Methods("GET")
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting API server",
		zap.String("host", s.config.Server.Host),
		zap.Int("port", s.config.Server.Port),
		zap.Int("active_rules", len(s.provider.Current())))

	go s.wsHub.Run()
	return s.server.ListenAndServe()
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping API server")
	return s.server.Shutdown(ctx)
}

// Hub returns the WebSocket hub for broadcasting events.
func (s *Server) Hub() *websocket.Hub {
	return s.wsHub
}
