// Package console holds screen controllers of the customer console. Each screen is an
// explicit state machine, remote calls are made without holding the screen lock and
// their results are dropped once the screen is closed.
package console

import (
	"sync"
	"time"
)

const cacheStaleNotice = "Cached list could not be refreshed, reload it."

// DefaultMessageTTL is how long a success message stays visible
const DefaultMessageTTL = 5 * time.Second

type Status int

const (
	Idle Status = iota
	Loading
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is what a screen reports to the user after the last action
type State struct {
	Status  Status
	Message string
	Err     error
}

type formValidator interface {
	Validate(any) error
}

type screen struct {
	mu         sync.Mutex
	state      State
	closed     bool
	messageTTL time.Duration
	clearTimer *time.Timer
	clearGen   uint64
}

func (s *screen) init(messageTTL time.Duration) {
	s.messageTTL = messageTTL
}

// State returns copy of the current screen state
func (s *screen) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close discards every completion arriving afterwards and stops pending message timer
func (s *screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.cancelClearLocked()
}

// beginLocked moves screen into Loading keeping the visible message
func (s *screen) beginLocked() {
	s.state.Status = Loading
	s.state.Err = nil
}

func (s *screen) idleLocked() {
	s.cancelClearLocked()
	s.state = State{Status: Idle}
}

// succeedLocked reports success, non-empty message is cleared after messageTTL
func (s *screen) succeedLocked(msg string) {
	s.cancelClearLocked()
	s.state = State{Status: Succeeded, Message: msg}
	if msg != "" {
		s.scheduleClearLocked()
	}
}

// succeedStaleLocked reports mutation that went through while cached list could not be dropped
func (s *screen) succeedStaleLocked(msg string, err error) {
	s.succeedLocked(msg + " " + cacheStaleNotice)
	s.state.Err = err
}

func (s *screen) failLocked(msg string, err error) {
	s.cancelClearLocked()
	s.state = State{Status: Failed, Message: msg, Err: err}
}

func (s *screen) scheduleClearLocked() {
	if s.messageTTL <= 0 {
		return
	}

	gen := s.clearGen
	s.clearTimer = time.AfterFunc(s.messageTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		// replaced or cancelled while waiting for the lock
		if s.closed || s.clearGen != gen {
			return
		}
		s.state.Message = ""
		s.clearTimer = nil
	})
}

func (s *screen) cancelClearLocked() {
	s.clearGen++
	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}
}
