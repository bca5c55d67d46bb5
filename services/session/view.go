package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	platform "Playhub/constants/platform"
	"Playhub/models"
	"Playhub/services/poller"
	"Playhub/services/pushchannel"
	"Playhub/utils/logger"

	"github.com/google/uuid"
)

var (
	ErrMoveRejected = errors.New("move rejected")
	ErrNotMounted   = errors.New("session view is not mounted")
	ErrClosed       = errors.New("session view closed")
	ErrUnresolved   = errors.New("session id and player id are required")
)

// Config wires a View to its collaborators. NewChannel, Fetch and Move may
// be nil; without a channel the view polls Fetch and submits moves with Move.
type Config struct {
	SessionID string
	PlayerID  string

	NewChannel func() pushchannel.Channel
	Fetch      func(ctx context.Context, sessionID string) (models.GameSession, error)
	Move       func(ctx context.Context, sessionID string, move models.MoveRequest) (models.GameSession, error)

	Polls        *poller.Registry
	PollInterval time.Duration

	// OnChange receives a snapshot after every accepted update
	OnChange func(Snapshot)
	// OnPollFailed runs once when the fallback poll gives up
	OnPollFailed func(poller.Outcome)
}

// JoinPayload is emitted upstream once the channel is open
type JoinPayload struct {
	SessionID string `json:"session_id"`
	PlayerID  string `json:"player_id"`
}

// MovePayload carries a 1-based board position
type MovePayload struct {
	SessionID string `json:"session_id"`
	Position  int    `json:"position"`
}

// Snapshot is the view model sent to the browser
type Snapshot struct {
	SessionID   string              `json:"session_id"`
	Session     *models.GameSession `json:"session"`
	LocalMark   models.Mark         `json:"local_mark"`
	Spectator   bool                `json:"spectator"`
	MyTurn      bool                `json:"my_turn"`
	Probability string              `json:"probability"`
	OverlayOpen bool                `json:"overlay_open"`
	Result      string              `json:"result,omitempty"`
	Polling     bool                `json:"polling"`
}

/*
 * 'View' mirrors one game session for one local player. Every update replaces
 * the mirror; the board is never mutated locally. The result overlay opens at
 * most once per terminal transition.
 */
type View struct {
	cfg    Config
	target string

	mu          sync.Mutex
	state       *models.GameSession
	mark        models.Mark
	overlayOpen bool
	shownFor    models.SessionStatus
	channel     pushchannel.Channel
	polling     bool
	mounted     bool
	closed      bool
}

func NewView(cfg Config) *View {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = platform.DEFAULT_LOBBY_POLL_INTERVAL
	}
	return &View{cfg: cfg, target: "session:" + uuid.New().String()}
}

func (v *View) SessionID() string { return v.cfg.SessionID }

// Mount opens the push channel and joins the session. When the channel
// cannot be opened the view falls back to polling the session service.
func (v *View) Mount(ctx context.Context) error {
	if v.cfg.SessionID == "" || v.cfg.PlayerID == "" {
		return ErrUnresolved
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	if v.mounted {
		v.mu.Unlock()
		return nil
	}
	v.mounted = true
	v.mu.Unlock()

	if v.cfg.NewChannel != nil {
		err := v.openChannel(ctx)
		if err == nil {
			return nil
		}
		logger.Warnf("[SESSION] push channel for %s unavailable, polling instead: %v", v.cfg.SessionID, err)
	}
	if err := v.startPolling(); err != nil {
		// Let a later Mount try again
		v.mu.Lock()
		v.mounted = false
		v.mu.Unlock()
		return err
	}
	return nil
}

func (v *View) openChannel(ctx context.Context) error {
	ch := v.cfg.NewChannel()
	ch.On(platform.EVENT_GAME_STATE_UPDATE, func(data json.RawMessage) {
		var s models.GameSession
		if err := json.Unmarshal(data, &s); err != nil {
			logger.Warnf("[SESSION] bad update for %s: %v", v.cfg.SessionID, err)
			return
		}
		v.ApplyUpdate(s)
	})
	ch.On(pushchannel.EventDisconnect, func(json.RawMessage) {
		logger.Infof("[SESSION] push channel for %s disconnected", v.cfg.SessionID)
		if !v.dropChannel(ch) {
			return
		}
		if err := v.startPolling(); err != nil {
			logger.Errorf("[SESSION] cannot follow %s after disconnect: %v", v.cfg.SessionID, err)
			v.pollFailed(poller.Outcome{Target: v.target, State: poller.StateDone, Result: poller.ResultFailed, Error: err.Error()})
		}
	})

	if err := ch.Connect(ctx); err != nil {
		ch.OffAll()
		ch.Close()
		return err
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		ch.OffAll()
		ch.Close()
		return ErrClosed
	}
	v.channel = ch
	v.mu.Unlock()

	join := JoinPayload{SessionID: v.cfg.SessionID, PlayerID: v.cfg.PlayerID}
	if err := ch.Emit(platform.EVENT_JOIN_GAME, join); err != nil {
		v.dropChannel(ch)
		return fmt.Errorf("joining session %s: %w", v.cfg.SessionID, err)
	}
	logger.Debugf("[SESSION] %s joined %s", v.cfg.PlayerID, v.cfg.SessionID)
	return nil
}

// dropChannel detaches ch if it is still the view's channel and closes it.
// Returns false when the view was closed or already moved on.
func (v *View) dropChannel(ch pushchannel.Channel) bool {
	v.mu.Lock()
	if v.closed || v.channel != ch {
		v.mu.Unlock()
		return false
	}
	v.channel = nil
	v.mu.Unlock()

	ch.OffAll()
	if err := ch.Close(); err != nil {
		logger.Debugf("[SESSION] closing channel for %s: %v", v.cfg.SessionID, err)
	}
	return true
}

func (v *View) startPolling() error {
	if v.cfg.Fetch == nil || v.cfg.Polls == nil {
		return fmt.Errorf("no way to follow session %s", v.cfg.SessionID)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}
	v.polling = true

	// Registered under the lock so a concurrent Close always finds the poll
	v.cfg.Polls.Every(context.Background(), v.target, v.cfg.PollInterval, func(ctx context.Context) error {
		s, err := v.cfg.Fetch(ctx, v.cfg.SessionID)
		if err != nil {
			return err
		}
		if ctx.Err() == nil {
			v.ApplyUpdate(s)
		}
		return nil
	}, v.pollFailed)
	return nil
}

// pollFailed marks the view as no longer following the session and tells
// OnChange and OnPollFailed.
func (v *View) pollFailed(out poller.Outcome) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.polling = false
	snap := v.snapshotLocked()
	onChange, onFailed := v.cfg.OnChange, v.cfg.OnPollFailed
	v.mu.Unlock()

	logger.Errorf("[SESSION] stopped following %s: %s", v.cfg.SessionID, out.Error)
	if onChange != nil {
		onChange(snap)
	}
	if onFailed != nil {
		onFailed(out)
	}
}

// ApplyUpdate replaces the mirror. Updates after Close are discarded and
// reported as not applied.
func (v *View) ApplyUpdate(s models.GameSession) bool {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return false
	}
	state := s
	v.state = &state
	v.mark = LocalMark(state, v.cfg.PlayerID)

	if state.Status.IsTerminal() {
		if v.shownFor != state.Status {
			v.overlayOpen = true
			v.shownFor = state.Status
		}
	} else {
		v.overlayOpen = false
		v.shownFor = ""
	}
	snap := v.snapshotLocked()
	onChange := v.cfg.OnChange
	v.mu.Unlock()

	if onChange != nil {
		onChange(snap)
	}
	return true
}

// LocalMark is X or O when playerID sits at that side of the board,
// MarkNone for spectators.
func LocalMark(s models.GameSession, playerID string) models.Mark {
	switch {
	case playerID == "":
		return models.MarkNone
	case s.PlayerXID == playerID:
		return models.MarkX
	case s.PlayerOID == playerID:
		return models.MarkO
	}
	return models.MarkNone
}

// CellClick asks to mark a 0-based cell. The move is sent only when the game
// is in progress, the cell is empty and it is the local player's turn.
func (v *View) CellClick(ctx context.Context, index int) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	if v.state == nil {
		v.mu.Unlock()
		return fmt.Errorf("%w: no session state yet", ErrMoveRejected)
	}
	state := *v.state
	mark := v.mark
	ch := v.channel
	v.mu.Unlock()

	switch {
	case state.Status != models.SessionInProgress:
		return fmt.Errorf("%w: game is %s", ErrMoveRejected, state.Status)
	case mark == models.MarkNone:
		return fmt.Errorf("%w: spectators cannot move", ErrMoveRejected)
	case !state.CellEmpty(index):
		return fmt.Errorf("%w: cell %d is not available", ErrMoveRejected, index)
	case state.CurrentTurn != mark:
		return fmt.Errorf("%w: not your turn", ErrMoveRejected)
	}

	position := index + 1
	if ch != nil {
		return ch.Emit(platform.EVENT_MAKE_MOVE, MovePayload{SessionID: state.SessionID, Position: position})
	}
	if v.cfg.Move == nil {
		return ErrNotMounted
	}
	next, err := v.cfg.Move(ctx, v.cfg.SessionID, models.MoveRequest{PlayerID: v.cfg.PlayerID, Position: position})
	if err != nil {
		return err
	}
	v.ApplyUpdate(next)
	return nil
}

// DismissOverlay closes the result overlay until the next terminal transition
func (v *View) DismissOverlay() {
	v.mu.Lock()
	v.overlayOpen = false
	v.mu.Unlock()
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *View) snapshotLocked() Snapshot {
	snap := Snapshot{
		SessionID:   v.cfg.SessionID,
		LocalMark:   v.mark,
		OverlayOpen: v.overlayOpen,
		Probability: FormatProbability(nil),
		Polling:     v.polling,
	}
	if v.state == nil {
		return snap
	}
	state := *v.state
	snap.Session = &state
	snap.Spectator = v.mark == models.MarkNone
	snap.MyTurn = !snap.Spectator && state.CurrentTurn == v.mark
	snap.Probability = FormatProbability(DisplayProbability(state.WinProbability, snap.MyTurn))
	snap.Result = resultFor(state, v.mark)
	return snap
}

func resultFor(s models.GameSession, mark models.Mark) string {
	switch s.Status {
	case models.SessionDraw:
		return "draw"
	case models.SessionWin:
		if mark == models.MarkNone {
			return "winner " + string(s.Winner)
		}
		if s.Winner == mark {
			return "won"
		}
		return "lost"
	}
	return ""
}

// DisplayProbability converts the server probability, which belongs to the
// player on turn, into the local player's chance.
func DisplayProbability(p *float64, myTurn bool) *float64 {
	if p == nil {
		return nil
	}
	value := *p
	if !myTurn {
		value = 1 - value
	}
	return &value
}

func FormatProbability(p *float64) string {
	if p == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", *p*100)
}

// Close deregisters every handler, closes the channel and stops the
// fallback poll. Safe to call more than once.
func (v *View) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	ch := v.channel
	v.channel = nil
	v.mu.Unlock()

	if ch != nil {
		ch.OffAll()
		if err := ch.Close(); err != nil {
			logger.Debugf("[SESSION] closing channel for %s: %v", v.cfg.SessionID, err)
		}
	}
	if v.cfg.Polls != nil {
		v.cfg.Polls.Stop(v.target)
	}
	logger.Debugf("[SESSION] view of %s for %s closed", v.cfg.SessionID, v.cfg.PlayerID)
}
