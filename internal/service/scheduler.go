package service

import (
	"context"
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/sammirack/admin-sync/internal/adapter"
	"github.com/sammirack/admin-sync/internal/broadcast"
	"github.com/sammirack/admin-sync/internal/config"
	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/models"
)

// SaveFunc is the push callback executed by the scheduler.
type SaveFunc func(ctx context.Context) error

// saveScheduler implements [SaveScheduler]. The remote rate limit threshold
// is unknown to the client, so the scheduler reacts to rate-limit errors with
// an exponentially growing cooldown window instead of probing.
type saveScheduler struct {
	saveFunc SaveFunc
	clock    Clock
	channel  broadcast.Channel
	logger   *logger.Logger
	cfg      config.ClientScheduler

	mu                  sync.Mutex
	stopped             bool
	pending             bool
	queued              bool
	debounce            Timer
	cooldown            Timer
	retry               Timer
	lastSaveTime        time.Time
	consecutiveFailures int
	blockedUntil        time.Time
}

// NewSaveScheduler creates a stopped-state-free scheduler; the first
// RequestSave arms the debounce timer.
func NewSaveScheduler(cfg config.ClientScheduler, saveFunc SaveFunc, clock Clock, channel broadcast.Channel, logger *logger.Logger) SaveScheduler {
	return &saveScheduler{
		saveFunc: saveFunc,
		clock:    clock,
		channel:  channel,
		logger:   logger,
		cfg:      cfg,
	}
}

// RequestSave implements [SaveScheduler]. Repeated calls within the debounce
// window collapse into a single pending save. During a cooldown exactly one
// deferred fire is queued at the unblock time; additional calls coalesce
// into it without producing network traffic.
func (s *saveScheduler) RequestSave() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	now := s.clock.Now()
	if now.Before(s.blockedUntil) {
		if !s.queued {
			s.queued = true
			s.cooldown = s.clock.AfterFunc(s.blockedUntil.Sub(now), s.fireAfterCooldown)
		}
		return
	}

	s.pending = true
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounce = s.clock.AfterFunc(s.cfg.Debounce, s.fire)
}

// Stop implements [SaveScheduler].
func (s *saveScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	s.pending = false
	s.queued = false
	if s.debounce != nil {
		s.debounce.Stop()
	}
	if s.cooldown != nil {
		s.cooldown.Stop()
	}
	if s.retry != nil {
		s.retry.Stop()
	}
}

// fire runs when the debounce timer expires. A fire landing inside a
// cooldown window is diverted to the queued deferred save: the window can
// open after the timer was armed, when a mutation arrives while the push
// that triggers the rate limit is still in flight. If the minimum inter-save
// interval has not elapsed since the last executed save, the save is
// rescheduled for the remaining interval instead of executed.
func (s *saveScheduler) fire() {
	s.mu.Lock()
	if s.stopped || !s.pending {
		s.mu.Unlock()
		return
	}

	now := s.clock.Now()
	if now.Before(s.blockedUntil) {
		s.pending = false
		if !s.queued {
			s.queued = true
			s.cooldown = s.clock.AfterFunc(s.blockedUntil.Sub(now), s.fireAfterCooldown)
		}
		s.mu.Unlock()
		return
	}

	if !s.lastSaveTime.IsZero() {
		if since := now.Sub(s.lastSaveTime); since < s.cfg.MinSaveInterval {
			s.debounce = s.clock.AfterFunc(s.cfg.MinSaveInterval-since, s.fire)
			s.mu.Unlock()
			return
		}
	}

	s.pending = false
	s.lastSaveTime = now
	s.mu.Unlock()

	s.attempt(1)
}

// fireAfterCooldown runs when the cooldown window ends and executes the
// single save queued during the window.
func (s *saveScheduler) fireAfterCooldown() {
	s.mu.Lock()
	s.queued = false
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.pending = true
	s.mu.Unlock()

	s.fire()
}

// attempt executes one push try. Transient failures reschedule with a linear
// attempt*RetryWait delay up to MaxRetries; a rate-limit failure aborts the
// retry loop and opens the cooldown window; permanent failures are dropped.
func (s *saveScheduler) attempt(attempt int) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	err := s.saveFunc(context.Background())
	if err == nil {
		s.mu.Lock()
		s.consecutiveFailures = 0
		s.blockedUntil = time.Time{}
		s.mu.Unlock()

		s.logger.Debug().Int("attempt", attempt).Msg("save executed")
		return
	}

	switch {
	case adapter.IsRateLimited(err):
		s.logger.Warn().Err(err).Msg("remote rate limit hit, entering cooldown")
		s.enterCooldown()

	case adapter.IsPermanent(err):
		s.logger.Error().Err(err).Msg("save rejected permanently, dropping")

	default:
		if attempt >= s.cfg.MaxRetries {
			s.logger.Error().Err(err).Int("attempts", attempt).Msg("save abandoned after retries")
			return
		}
		wait := time.Duration(attempt) * s.cfg.RetryWait
		s.logger.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("transient save failure, will retry")
		s.mu.Lock()
		if !s.stopped {
			s.retry = s.clock.AfterFunc(wait, func() { s.attempt(attempt + 1) })
		}
		s.mu.Unlock()
	}
}

// enterCooldown computes wait = min(base * 2^(failures-1), max), blocks all
// saves until the window elapses, queues one deferred fire for the data that
// just failed to push, and emits a cooldown notification.
func (s *saveScheduler) enterCooldown() {
	s.mu.Lock()

	s.consecutiveFailures++
	wait := s.cfg.CooldownBase
	for i := 1; i < s.consecutiveFailures; i++ {
		wait *= 2
		if wait >= s.cfg.CooldownMax {
			break
		}
	}
	if wait > s.cfg.CooldownMax {
		wait = s.cfg.CooldownMax
	}

	now := s.clock.Now()
	s.blockedUntil = now.Add(wait)

	if !s.queued {
		s.queued = true
		s.cooldown = s.clock.AfterFunc(wait, s.fireAfterCooldown)
	}

	notice := models.CooldownNotice{
		WaitSeconds: int(math.Ceil(wait.Seconds())),
		UnblockTime: s.blockedUntil,
	}
	failures := s.consecutiveFailures
	s.mu.Unlock()

	s.logger.Warn().
		Int("consecutive_failures", failures).
		Dur("wait", wait).
		Time("blocked_until", notice.UnblockTime).
		Msg("save cooldown active")

	data, err := json.Marshal(notice)
	if err != nil {
		return
	}
	s.channel.Publish(models.Message{Type: models.SaveCooldown, Data: data})
}
