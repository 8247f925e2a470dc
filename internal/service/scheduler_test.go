package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammirack/admin-sync/internal/adapter"
	"github.com/sammirack/admin-sync/internal/broadcast"
	"github.com/sammirack/admin-sync/internal/config"
	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/models"
)

// ── fake clock ──

type fakeTimer struct {
	mu      sync.Mutex
	when    time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{when: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward, firing due timers in chronological order.
// Callbacks run outside the clock lock so they may arm new timers.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var next *fakeTimer
		for _, t := range c.timers {
			t.mu.Lock()
			live := !t.stopped && !t.fired && !t.when.After(target)
			t.mu.Unlock()
			if live && (next == nil || t.when.Before(next.when)) {
				next = t
			}
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		if next.when.After(c.now) {
			c.now = next.when
		}
		next.mu.Lock()
		next.fired = true
		f := next.f
		next.mu.Unlock()
		c.mu.Unlock()

		f()
	}
}

// ── test harness ──

type schedulerHarness struct {
	clock    *fakeClock
	sched    SaveScheduler
	mu       sync.Mutex
	calls    int
	errs     []error
	cooldown []models.CooldownNotice
}

func (h *schedulerHarness) save(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	if len(h.errs) == 0 {
		return nil
	}
	err := h.errs[0]
	h.errs = h.errs[1:]
	return err
}

func (h *schedulerHarness) callCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

func (h *schedulerHarness) notices() []models.CooldownNotice {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.CooldownNotice(nil), h.cooldown...)
}

func newSchedulerHarness(t *testing.T, errs ...error) *schedulerHarness {
	t.Helper()

	cfg := config.ClientScheduler{
		Debounce:        config.DefaultDebounce,
		MinSaveInterval: config.DefaultMinSaveInterval,
		MaxRetries:      config.DefaultMaxRetries,
		RetryWait:       config.DefaultRetryWait,
		CooldownBase:    config.DefaultCooldownBase,
		CooldownMax:     config.DefaultCooldownMax,
	}
	return newSchedulerHarnessCfg(t, cfg, errs...)
}

func newSchedulerHarnessCfg(t *testing.T, cfg config.ClientScheduler, errs ...error) *schedulerHarness {
	t.Helper()

	h := &schedulerHarness{
		clock: newFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		errs:  errs,
	}

	hub := broadcast.NewHub()
	listener := hub.Channel(logger.Nop())
	listener.Subscribe(func(msg models.Message) {
		if msg.Type != models.SaveCooldown {
			return
		}
		var notice models.CooldownNotice
		if err := json.Unmarshal(msg.Data, &notice); err != nil {
			return
		}
		h.mu.Lock()
		h.cooldown = append(h.cooldown, notice)
		h.mu.Unlock()
	})

	h.sched = NewSaveScheduler(cfg, h.save, h.clock, hub.Channel(logger.Nop()), logger.Nop())
	t.Cleanup(h.sched.Stop)

	return h
}

func rateLimitErr() error {
	return fmt.Errorf("%w: http 429: slow down", adapter.ErrRateLimited)
}

func transientErr() error {
	return fmt.Errorf("%w: http 500: boom", adapter.ErrTransient)
}

func permanentErr() error {
	return fmt.Errorf("%w: http 400: bad payload", adapter.ErrPermanent)
}

// ── debounce and spacing ──

func TestScheduler_CoalescesBurstIntoOneSave(t *testing.T) {
	h := newSchedulerHarness(t)

	for i := 0; i < 10; i++ {
		h.sched.RequestSave()
		h.clock.Advance(50 * time.Millisecond)
	}
	assert.Zero(t, h.callCount(), "no save before the debounce window closes")

	h.clock.Advance(config.DefaultDebounce)
	assert.Equal(t, 1, h.callCount())
}

func TestScheduler_DebounceTimerRearmsOnEachRequest(t *testing.T) {
	h := newSchedulerHarness(t)

	h.sched.RequestSave()
	h.clock.Advance(900 * time.Millisecond)
	h.sched.RequestSave()
	h.clock.Advance(900 * time.Millisecond)
	assert.Zero(t, h.callCount())

	h.clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, h.callCount())
}

func TestScheduler_MinIntervalReschedulesSecondSave(t *testing.T) {
	// A debounce window shorter than the minimum inter-save interval lets
	// two bursts individually satisfy the debounce while collectively
	// exceeding server throughput; the second save must be pushed out to
	// lastSaveTime + MinSaveInterval.
	cfg := config.ClientScheduler{
		Debounce:        100 * time.Millisecond,
		MinSaveInterval: config.DefaultMinSaveInterval,
		MaxRetries:      config.DefaultMaxRetries,
		RetryWait:       config.DefaultRetryWait,
		CooldownBase:    config.DefaultCooldownBase,
		CooldownMax:     config.DefaultCooldownMax,
	}
	h := newSchedulerHarnessCfg(t, cfg)

	h.sched.RequestSave()
	h.clock.Advance(100 * time.Millisecond)
	require.Equal(t, 1, h.callCount())

	h.sched.RequestSave()
	h.clock.Advance(600 * time.Millisecond)
	assert.Equal(t, 1, h.callCount(), "second save held until the minimum interval elapses")

	h.clock.Advance(200 * time.Millisecond)
	assert.Equal(t, 2, h.callCount())
}

func TestScheduler_NoSaveWithoutRequest(t *testing.T) {
	h := newSchedulerHarness(t)

	h.clock.Advance(time.Hour)
	assert.Zero(t, h.callCount())
}

func TestScheduler_StopCancelsPendingSave(t *testing.T) {
	h := newSchedulerHarness(t)

	h.sched.RequestSave()
	h.sched.Stop()
	h.clock.Advance(time.Hour)

	assert.Zero(t, h.callCount())
}

// ── retry policy ──

func TestScheduler_TransientFailureRetriedWithLinearBackoff(t *testing.T) {
	h := newSchedulerHarness(t, transientErr(), transientErr())

	h.sched.RequestSave()
	h.clock.Advance(config.DefaultDebounce)
	require.Equal(t, 1, h.callCount())

	// attempt 2 fires after 1*RetryWait, attempt 3 after another 2*RetryWait
	h.clock.Advance(config.DefaultRetryWait)
	require.Equal(t, 2, h.callCount())

	h.clock.Advance(2 * config.DefaultRetryWait)
	assert.Equal(t, 3, h.callCount())
	assert.Empty(t, h.notices(), "transient failures never trigger cooldown")
}

func TestScheduler_AbandonsAfterMaxRetries(t *testing.T) {
	h := newSchedulerHarness(t, transientErr(), transientErr(), transientErr(), transientErr())

	h.sched.RequestSave()
	h.clock.Advance(config.DefaultDebounce)
	h.clock.Advance(time.Hour)

	assert.Equal(t, config.DefaultMaxRetries, h.callCount())
}

func TestScheduler_PermanentFailureNotRetried(t *testing.T) {
	h := newSchedulerHarness(t, permanentErr())

	h.sched.RequestSave()
	h.clock.Advance(config.DefaultDebounce)
	h.clock.Advance(time.Hour)

	assert.Equal(t, 1, h.callCount())
	assert.Empty(t, h.notices())
}

// ── rate limiting and cooldown ──

func TestScheduler_RateLimitOpensCooldown(t *testing.T) {
	h := newSchedulerHarness(t, rateLimitErr())

	h.sched.RequestSave()
	h.clock.Advance(config.DefaultDebounce)
	require.Equal(t, 1, h.callCount())

	notices := h.notices()
	require.Len(t, notices, 1)
	assert.Equal(t, 60, notices[0].WaitSeconds)
	assert.False(t, notices[0].UnblockTime.IsZero())
}

func TestScheduler_MutationDuringCooldownDefersUntilUnblock(t *testing.T) {
	// Scenario: the first push hits the rate limit; a second mutation
	// arriving during the cooldown must not produce a network call until
	// the block expires, and then produces exactly one.
	h := newSchedulerHarness(t, rateLimitErr())

	h.sched.RequestSave()
	h.clock.Advance(config.DefaultDebounce)
	require.Equal(t, 1, h.callCount())

	h.sched.RequestSave()
	h.sched.RequestSave()
	h.clock.Advance(30 * time.Second)
	assert.Equal(t, 1, h.callCount(), "no network call while blocked")

	h.clock.Advance(config.DefaultCooldownBase)
	assert.Equal(t, 2, h.callCount(), "exactly one deferred save after unblock")
}

func TestScheduler_MutationDuringInFlightPushHonorsCooldown(t *testing.T) {
	// A mutation landing while the triggering push is still in flight arms
	// the debounce timer before the rate-limit error opens the cooldown.
	// That timer must divert into the queued deferred save instead of
	// executing inside the window.
	cfg := config.ClientScheduler{
		Debounce:        config.DefaultDebounce,
		MinSaveInterval: config.DefaultMinSaveInterval,
		MaxRetries:      config.DefaultMaxRetries,
		RetryWait:       config.DefaultRetryWait,
		CooldownBase:    config.DefaultCooldownBase,
		CooldownMax:     config.DefaultCooldownMax,
	}
	clock := newFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	hub := broadcast.NewHub()

	var (
		mu    sync.Mutex
		calls int
		sched SaveScheduler
	)
	sched = NewSaveScheduler(cfg, func(context.Context) error {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			sched.RequestSave()
			return rateLimitErr()
		}
		return nil
	}, clock, hub.Channel(logger.Nop()), logger.Nop())
	t.Cleanup(sched.Stop)

	count := func() int {
		mu.Lock()
		defer mu.Unlock()
		return calls
	}

	sched.RequestSave()
	clock.Advance(config.DefaultDebounce)
	require.Equal(t, 1, count())

	clock.Advance(30 * time.Second)
	assert.Equal(t, 1, count(), "the in-flight mutation must wait out the cooldown")

	clock.Advance(config.DefaultCooldownBase)
	assert.Equal(t, 2, count(), "exactly one deferred save once the block expires")
}

func TestScheduler_StopCancelsArmedRetry(t *testing.T) {
	h := newSchedulerHarness(t, transientErr())

	h.sched.RequestSave()
	h.clock.Advance(config.DefaultDebounce)
	require.Equal(t, 1, h.callCount())

	// a retry is armed for attempt*RetryWait; Stop must cancel it
	h.sched.Stop()
	h.clock.Advance(time.Hour)

	assert.Equal(t, 1, h.callCount())
}

func TestScheduler_CooldownGrowsExponentiallyAndCaps(t *testing.T) {
	h := newSchedulerHarness(t,
		rateLimitErr(), rateLimitErr(), rateLimitErr(), rateLimitErr(), rateLimitErr())

	h.sched.RequestSave()
	h.clock.Advance(config.DefaultDebounce)

	// Each cooldown expiry fires the queued save, which is rate-limited
	// again, producing the next notice.
	h.clock.Advance(time.Hour)

	notices := h.notices()
	require.GreaterOrEqual(t, len(notices), 4)
	assert.Equal(t, 60, notices[0].WaitSeconds)
	assert.Equal(t, 120, notices[1].WaitSeconds)
	assert.Equal(t, 240, notices[2].WaitSeconds)
	assert.Equal(t, 300, notices[3].WaitSeconds, "cooldown capped at max wait")
}

func TestScheduler_SuccessResetsFailureState(t *testing.T) {
	h := newSchedulerHarness(t, rateLimitErr())

	h.sched.RequestSave()
	h.clock.Advance(config.DefaultDebounce)
	require.Equal(t, 1, h.callCount())

	// cooldown expires, deferred save succeeds
	h.clock.Advance(config.DefaultCooldownBase)
	require.Equal(t, 2, h.callCount())

	// next rate limit starts from the base wait again
	h.mu.Lock()
	h.errs = []error{rateLimitErr()}
	h.mu.Unlock()

	h.sched.RequestSave()
	h.clock.Advance(config.DefaultDebounce)

	notices := h.notices()
	require.Len(t, notices, 2)
	assert.Equal(t, 60, notices[1].WaitSeconds)
}

func TestScheduler_RateLimitErrorClassification(t *testing.T) {
	require.True(t, adapter.IsRateLimited(rateLimitErr()))
	require.False(t, adapter.IsRateLimited(transientErr()))
	require.False(t, errors.Is(permanentErr(), adapter.ErrRateLimited))
}
