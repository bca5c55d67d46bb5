package poller

import (
	"Playhub/models"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 5 * time.Millisecond

type outcomes struct {
	mu   sync.Mutex
	list []Outcome
}

func (o *outcomes) add(out Outcome) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.list = append(o.list, out)
}

func (o *outcomes) all() []Outcome {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Outcome(nil), o.list...)
}

func TestInvitationAcceptedAfterPendingNavigatesOnce(t *testing.T) {
	r := NewRegistry(1)
	var calls int32
	fetch := func(ctx context.Context) (models.Invitation, error) {
		n := atomic.AddInt32(&calls, 1)
		if n <= 3 {
			return models.Invitation{ID: "inv1", GameID: "g1", Status: models.InvitationPending}, nil
		}
		return models.Invitation{ID: "inv1", GameID: "g1", Status: models.InvitationAccepted, SessionID: "s1"}, nil
	}

	var got outcomes
	r.Start(context.Background(), InvitationTarget("inv1"), tick, InvitationCheck(fetch), got.add)

	require.Eventually(t, func() bool { return len(got.all()) == 1 }, time.Second, tick)
	// Give a stray tick the chance to navigate a second time
	time.Sleep(4 * tick)

	list := got.all()
	require.Len(t, list, 1)
	assert.Equal(t, ResultSuccess, list[0].Result)
	assert.Equal(t, StateDone, list[0].State)
	assert.Contains(t, list[0].URL, "sessionId=s1")
	assert.True(t, strings.HasPrefix(list[0].URL, "/games/g1/play?"))
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
	assert.False(t, r.Active(InvitationTarget("inv1")))
}

func TestInvitationRejectedStopsWithoutNavigation(t *testing.T) {
	r := NewRegistry(1)
	fetch := func(ctx context.Context) (models.Invitation, error) {
		return models.Invitation{ID: "inv2", Status: models.InvitationRejected}, nil
	}

	var got outcomes
	target := InvitationTarget("inv2")
	r.Start(context.Background(), target, tick, InvitationCheck(fetch), got.add)

	require.Eventually(t, func() bool { return len(got.all()) == 1 }, time.Second, tick)
	out := got.all()[0]
	assert.Equal(t, ResultRejected, out.Result)
	assert.Empty(t, out.URL)
	assert.Equal(t, out, r.Last(target))
}

func TestAcceptedWithoutSessionKeepsPolling(t *testing.T) {
	check := InterpretInvitation(models.Invitation{Status: models.InvitationAccepted})
	assert.False(t, check.Terminal)

	check = InterpretTicket(models.LobbyTicket{Status: models.LobbyMatched})
	assert.False(t, check.Terminal)

	check = InterpretTicket(models.LobbyTicket{GameID: "g1", Status: models.LobbyMatched, SessionID: "s9"})
	assert.True(t, check.Terminal)
	assert.True(t, check.Success)
}

func TestRequestFailureStopsImmediately(t *testing.T) {
	r := NewRegistry(1)
	var calls int32
	check := func(ctx context.Context) (Check, error) {
		atomic.AddInt32(&calls, 1)
		return Check{}, errors.New("connection refused")
	}

	var got outcomes
	r.Start(context.Background(), "lobby:p1:g1", tick, check, got.add)

	require.Eventually(t, func() bool { return len(got.all()) == 1 }, time.Second, tick)
	time.Sleep(4 * tick)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, ResultFailed, got.all()[0].Result)
	assert.Equal(t, "connection refused", got.all()[0].Error)
}

func TestFailureCapIsConfigurable(t *testing.T) {
	r := NewRegistry(3)
	var calls int32
	check := func(ctx context.Context) (Check, error) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			return Check{}, errors.New("timeout")
		}
		return Check{Status: "MATCHED", Terminal: true, Success: true, GameID: "g1", SessionID: "s2"}, nil
	}

	var got outcomes
	r.Start(context.Background(), "lobby:p1:g1", tick, check, got.add)

	require.Eventually(t, func() bool { return len(got.all()) == 1 }, time.Second, tick)
	assert.Equal(t, ResultSuccess, got.all()[0].Result)
	assert.Equal(t, "s2", got.all()[0].SessionID)
}

func TestRestartKeepsOneTimerPerTarget(t *testing.T) {
	r := NewRegistry(1)
	var first, second int32
	pending := func(counter *int32) CheckFunc {
		return func(ctx context.Context) (Check, error) {
			atomic.AddInt32(counter, 1)
			return Check{Status: "WAITING"}, nil
		}
	}

	target := LobbyTarget("p1", "g1")
	id1 := r.Start(context.Background(), target, tick, pending(&first), nil)
	id2 := r.Start(context.Background(), target, tick, pending(&second), nil)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 1, r.ActiveCount())

	require.Eventually(t, func() bool { return atomic.LoadInt32(&second) >= 2 }, time.Second, tick)
	stale := atomic.LoadInt32(&first)
	time.Sleep(4 * tick)
	assert.Equal(t, stale, atomic.LoadInt32(&first), "cancelled poll must stop ticking")
	assert.Equal(t, id2, r.Last(target).PollID)

	assert.True(t, r.Stop(target))
	assert.False(t, r.Stop(target))
	assert.Equal(t, 0, r.ActiveCount())
	assert.Equal(t, StateIdle, r.Last(target).State)
}

func TestStoppedPollDiscardsInFlightResult(t *testing.T) {
	r := NewRegistry(1)
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	check := func(ctx context.Context) (Check, error) {
		select {
		case entered <- struct{}{}:
		default:
		}
		<-release
		return Check{Status: "ACCEPTED", Terminal: true, Success: true, GameID: "g1", SessionID: "s1"}, nil
	}

	var got outcomes
	target := InvitationTarget("inv3")
	r.Start(context.Background(), target, tick, check, got.add)

	<-entered
	r.Stop(target)
	close(release)

	time.Sleep(4 * tick)
	assert.Empty(t, got.all())
	assert.Equal(t, StateIdle, r.Last(target).State)
}

func TestEveryRefreshesUntilStopped(t *testing.T) {
	r := NewRegistry(1)
	var calls int32
	target := NotificationsTarget("p1")
	r.Every(context.Background(), target, tick, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}, func(Outcome) { t.Error("refresh poll finished on its own") })

	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 3 }, time.Second, tick)
	assert.True(t, r.Active(target))

	r.StopAll()
	n := atomic.LoadInt32(&calls)
	time.Sleep(4 * tick)
	assert.LessOrEqual(t, atomic.LoadInt32(&calls), n+1)
	assert.False(t, r.Active(target))
}

func TestEveryStopsAfterFailures(t *testing.T) {
	r := NewRegistry(2)
	target := NotificationsTarget("p2")
	var calls int32
	done := make(chan Outcome, 1)
	r.Every(context.Background(), target, tick, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("502")
	}, func(out Outcome) { done <- out })

	select {
	case out := <-done:
		assert.Equal(t, ResultFailed, out.Result)
		assert.Equal(t, StateDone, out.State)
		assert.Equal(t, "502", out.Error)
	case <-time.After(time.Second):
		t.Fatal("failed refresh poll never reported")
	}
	assert.False(t, r.Active(target))
	assert.Equal(t, ResultFailed, r.Last(target).Result)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestSessionURLEscapes(t *testing.T) {
	assert.Equal(t, "/games/tic%20tac/play?sessionId=a%26b", SessionURL("tic tac", "a&b"))
}
