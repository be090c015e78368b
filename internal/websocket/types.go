package websocket

import (
	"time"
)

// EventType represents the type of WebSocket event
type EventType string

const (
	// EventTypeScan represents a completed prompt scan
	EventTypeScan EventType = "scan"
	// EventTypeRedTeamProgress represents red-team engine progress
	EventTypeRedTeamProgress EventType = "redteam_progress"
	// EventTypeRulesReload represents a rule set reload
	EventTypeRulesReload EventType = "rules_reload"
	// EventTypeConnection represents connection events
	EventTypeConnection EventType = "connection"
)

// Event represents a WebSocket event sent to clients
type Event struct {
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// ScanEvent summarizes one scan for live dashboards. The prompt text itself
// is never broadcast.
type ScanEvent struct {
	TextLength      int      `json:"text_length"`
	IsPositive      bool     `json:"is_positive"`
	Confidence      int      `json:"confidence"`
	MatchedRules    []string `json:"matched_rules,omitempty"`
	CompoundThreats int      `json:"compound_threats"`
	ProcessingMS    float64  `json:"processing_ms"`
}

// RulesReloadEvent announces a rule file reload.
type RulesReloadEvent struct {
	RuleCount   int    `json:"rule_count"`
	Fingerprint string `json:"fingerprint"`
}

// ConnectionEvent represents WebSocket connection events
type ConnectionEvent struct {
	Action   string `json:"action"` // "connected", "disconnected"
	ClientID string `json:"client_id"`
	Message  string `json:"message,omitempty"`
}

// Client represents a WebSocket client connection
type Client struct {
	ID          string
	Send        chan Event
	ConnectedAt time.Time
	IP          string
}
