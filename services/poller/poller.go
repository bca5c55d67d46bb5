package poller

import (
	"context"
	"sync"
	"time"

	"Playhub/utils/logger"

	"github.com/google/uuid"
)

type State string

const (
	StateIdle    State = "idle"
	StatePolling State = "polling"
	StateDone    State = "done"
)

type Result string

const (
	ResultNone     Result = ""
	ResultSuccess  Result = "success"
	ResultRejected Result = "rejected"
	ResultFailed   Result = "failed"
)

// Check is the interpretation of one status response
type Check struct {
	Status    string
	Terminal  bool
	Success   bool
	GameID    string
	SessionID string
}

// CheckFunc issues one status request
type CheckFunc func(ctx context.Context) (Check, error)

// Outcome is the observable state of the poll of a target
type Outcome struct {
	PollID    string `json:"poll_id"`
	Target    string `json:"target"`
	State     State  `json:"state"`
	Result    Result `json:"result,omitempty"`
	Status    string `json:"status,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	URL       string `json:"url,omitempty"`
	Error     string `json:"error,omitempty"`
}

type poll struct {
	id     string
	cancel context.CancelFunc
}

// Registry owns every running poll. There is at most one poll per target:
// starting a poll for a busy target cancels the previous one first.
type Registry struct {
	mu          sync.Mutex
	polls       map[string]*poll
	last        map[string]Outcome
	maxFailures int
}

// NewRegistry builds a registry. A poll stops after maxFailures consecutive
// failed requests; values below 1 mean 1.
func NewRegistry(maxFailures int) *Registry {
	if maxFailures < 1 {
		maxFailures = 1
	}
	return &Registry{
		polls:       make(map[string]*poll),
		last:        make(map[string]Outcome),
		maxFailures: maxFailures,
	}
}

// Start polls target every interval until check reports a terminal status,
// fails maxFailures times in a row, or the poll is stopped. onDone runs once
// with the final outcome unless the poll was cancelled. Returns the poll id.
func (r *Registry) Start(parent context.Context, target string, interval time.Duration,
	check CheckFunc, onDone func(Outcome)) string {

	p, ctx := r.register(parent, target)
	logger.Infof("[POLL] %s started (poll %s, every %s)", target, p.id, interval)
	go r.run(ctx, target, p, interval, check, onDone)
	return p.id
}

// Every runs refresh immediately and then every interval until stopped or
// until maxFailures consecutive failures. Only a failure ends it as Done, and
// onDone, when set, then receives the failed outcome.
func (r *Registry) Every(parent context.Context, target string, interval time.Duration,
	refresh func(ctx context.Context) error, onDone func(Outcome)) string {

	p, ctx := r.register(parent, target)
	logger.Debugf("[POLL] %s refreshing every %s (poll %s)", target, interval, p.id)
	go r.runEvery(ctx, target, p, interval, refresh, onDone)
	return p.id
}

func (r *Registry) register(parent context.Context, target string) (*poll, context.Context) {
	ctx, cancel := context.WithCancel(parent)
	p := &poll{id: uuid.New().String(), cancel: cancel}

	r.mu.Lock()
	defer r.mu.Unlock()
	if previous, ok := r.polls[target]; ok {
		previous.cancel()
		logger.Debugf("[POLL] %s restarted, poll %s cancelled", target, previous.id)
	}
	r.polls[target] = p
	r.last[target] = Outcome{PollID: p.id, Target: target, State: StatePolling}
	return p, ctx
}

func (r *Registry) run(ctx context.Context, target string, p *poll, interval time.Duration,
	check CheckFunc, onDone func(Outcome)) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		res, err := check(ctx)
		if ctx.Err() != nil {
			// Stopped while the request was in flight: the answer is stale
			return
		}

		if err != nil {
			failures++
			logger.Warnf("[POLL] %s status check failed (%d/%d): %v", target, failures, r.maxFailures, err)
			if failures >= r.maxFailures {
				r.finish(target, p, Outcome{Result: ResultFailed, Error: err.Error()}, onDone)
				return
			}
			continue
		}
		failures = 0

		r.setStatus(target, p, res.Status)
		if !res.Terminal {
			continue
		}

		out := Outcome{Status: res.Status}
		if res.Success {
			out.Result = ResultSuccess
			out.SessionID = res.SessionID
			out.URL = SessionURL(res.GameID, res.SessionID)
		} else {
			out.Result = ResultRejected
		}
		r.finish(target, p, out, onDone)
		return
	}
}

func (r *Registry) runEvery(ctx context.Context, target string, p *poll, interval time.Duration,
	refresh func(ctx context.Context) error, onDone func(Outcome)) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	failures := 0
	for {
		err := refresh(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			failures++
			logger.Warnf("[POLL] %s refresh failed (%d/%d): %v", target, failures, r.maxFailures, err)
			if failures >= r.maxFailures {
				r.finish(target, p, Outcome{Result: ResultFailed, Error: err.Error()}, onDone)
				return
			}
		} else {
			failures = 0
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (r *Registry) setStatus(target string, p *poll, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.polls[target] != p {
		return
	}
	out := r.last[target]
	out.Status = status
	r.last[target] = out
}

// finish commits the final outcome only if p still owns target, so a poll
// that was superseded or stopped never publishes a result.
func (r *Registry) finish(target string, p *poll, out Outcome, onDone func(Outcome)) {
	r.mu.Lock()
	if r.polls[target] != p {
		r.mu.Unlock()
		return
	}
	delete(r.polls, target)
	p.cancel()
	out.PollID = p.id
	out.Target = target
	out.State = StateDone
	r.last[target] = out
	r.mu.Unlock()

	logger.Infof("[POLL] %s done: result=%s status=%s", target, out.Result, out.Status)
	if onDone != nil {
		onDone(out)
	}
}

// Stop cancels the poll of target. The recorded outcome is cleared so the
// target reads as idle again. Returns false when nothing was running.
func (r *Registry) Stop(target string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.polls[target]
	if !ok {
		return false
	}
	p.cancel()
	delete(r.polls, target)
	delete(r.last, target)
	logger.Debugf("[POLL] %s stopped (poll %s)", target, p.id)
	return true
}

// StopAll cancels every running poll
func (r *Registry) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for target, p := range r.polls {
		p.cancel()
		delete(r.polls, target)
	}
}

// Active reports whether target currently has a running poll
func (r *Registry) Active(target string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.polls[target]
	return ok
}

// ActiveCount returns the number of running polls
func (r *Registry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.polls)
}

// Last returns the latest outcome of target. A target never polled, or
// stopped, reads as idle.
func (r *Registry) Last(target string) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	if out, ok := r.last[target]; ok {
		return out
	}
	return Outcome{Target: target, State: StateIdle}
}
