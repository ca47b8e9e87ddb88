package models

import "time"

type OverlayStatus string

const (
	OverlayStatusPending OverlayStatus = "pending"
	OverlayStatusReady   OverlayStatus = "ready"
	OverlayStatusFailed  OverlayStatus = "failed"
)

// OverlayEvent is published once when an overlay group finishes loading.
type OverlayEvent struct {
	Overlay  string        `json:"overlay"`
	Status   OverlayStatus `json:"status"`
	Features int           `json:"features"`
	Skipped  int           `json:"skipped"`
	Error    string        `json:"error,omitempty"`
	At       time.Time     `json:"at"`
}
