package app

import (
	"sigma/eval"
	"sigma/hal"
	"sigma/history"
	"sigma/ui"
)

// Config tunes the calculator instance.
type Config struct {
	// HistorySize bounds the in-memory history; 0 means the default.
	HistorySize int
}

const defaultHistorySize = 128

// New wires a calculator onto the HAL and returns the per-tick step
// function the host loop drives.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	n := cfg.HistorySize
	if n <= 0 {
		n = defaultHistorySize
	}

	sess := eval.NewSession()
	hist := history.New(n)
	u := ui.New(h.Display(), h.Input(), h.Time(), h.Logger(), sess, hist)
	return u.Step
}
