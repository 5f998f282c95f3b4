// Package controller keeps the client-side view of the focus-tracking API
// consistent with the server across loads, selections and mutations.
package controller

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
	"github.com/emiliopalmerini/hyperfocus/internal/logging"
	"github.com/emiliopalmerini/hyperfocus/internal/ports"
)

// InterruptionDraft holds the raw interruption inputs between edits.
type InterruptionDraft struct {
	Type        domain.InterruptionType
	Description string
	Start       string
	End         string
}

func defaultDraft() InterruptionDraft {
	return InterruptionDraft{Type: domain.DefaultInterruptionType}
}

// Input converts the raw draft into a submission, reading times as wall
// clock in loc. Blank times stay zero so CreateInterruption reports the
// missing interval.
func (d InterruptionDraft) Input(loc *time.Location) (InterruptionInput, error) {
	in := InterruptionInput{Type: d.Type, Description: d.Description}
	if d.Start != "" {
		t, err := domain.ParseLocalTimestamp(d.Start, loc)
		if err != nil {
			return in, err
		}
		in.Start = t
	}
	if d.End != "" {
		t, err := domain.ParseLocalTimestamp(d.End, loc)
		if err != nil {
			return in, err
		}
		in.End = t
	}
	return in, nil
}

// Snapshot is a consistent copy of the controller state for rendering.
type Snapshot struct {
	UserID            string
	Range             domain.Range
	Views             ViewStore
	SelectedSessionID *int64
	Error             string
	Loading           bool
	Draft             InterruptionDraft
}

// SelectedSession returns the selected session from the sessions view.
func (s Snapshot) SelectedSession() (domain.Session, bool) {
	if s.SelectedSessionID == nil {
		return domain.Session{}, false
	}
	for _, sess := range s.Views.Sessions.Value {
		if sess.ID == *s.SelectedSessionID {
			return sess, true
		}
	}
	return domain.Session{}, false
}

type state struct {
	userID    string
	rng       domain.Range
	views     ViewStore
	selection Selection
	errors    ErrorAggregator
	draft     InterruptionDraft
	inflight  int
	// epoch advances on every LoadAll; results carrying an older epoch are dropped.
	epoch uint64
}

// Controller owns the view store, the selection and the error banner.
// The mutex is never held across a network call.
type Controller struct {
	client  ports.ResourceClient
	logger  ports.Logger
	metrics ports.SyncMetrics

	mu sync.Mutex
	st state
}

type Option func(*Controller)

func WithLogger(logger ports.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithMetrics(metrics ports.SyncMetrics) Option {
	return func(c *Controller) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

// WithRange sets the range used before the first LoadAll.
func WithRange(rng domain.Range) Option {
	return func(c *Controller) {
		if rng != "" {
			c.st.rng = rng
		}
	}
}

func New(client ports.ResourceClient, opts ...Option) *Controller {
	c := &Controller{
		client:  client,
		logger:  logging.Nop(),
		metrics: nopMetrics{},
		st: state{
			rng:   domain.DefaultRange,
			draft: defaultDraft(),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadAll replaces the active context and fetches all six range views concurrently.
// A failed view leaves its slot empty and sets the banner; the others still land.
func (c *Controller) LoadAll(ctx context.Context, userID string, rng domain.Range) error {
	userID = strings.TrimSpace(userID)

	c.mu.Lock()
	if userID == "" {
		c.st.errors.Set(msgMissingUser)
		c.mu.Unlock()
		return &domain.ValidationError{Field: "user_id", Message: msgMissingUser}
	}
	if rng == "" {
		rng = c.st.rng
	}
	c.st.errors.Clear()
	c.st.userID = userID
	c.st.rng = rng
	c.st.views.reset()
	c.st.selection.clear(&c.st.views)
	c.st.epoch++
	epoch := c.st.epoch
	c.mu.Unlock()

	c.logger.Debug("loading views", "user_id", userID, "range", rng)
	c.fetchViews(ctx, epoch, userID, rng, RangeViews())
	return nil
}

// RefreshDependents refetches the views the mutation kind invalidates.
func (c *Controller) RefreshDependents(ctx context.Context, kind MutationKind) error {
	return c.refresh(ctx, kind, true)
}

func (c *Controller) refresh(ctx context.Context, kind MutationKind, clearBanner bool) error {
	cascade := CascadeFor(kind)

	c.mu.Lock()
	userID, rng := c.st.userID, c.st.rng
	if userID == "" {
		c.st.errors.Set(msgMissingUser)
		c.mu.Unlock()
		return &domain.ValidationError{Field: "user_id", Message: msgMissingUser}
	}
	if cascade.Reload {
		c.mu.Unlock()
		return c.LoadAll(ctx, userID, rng)
	}
	if clearBanner {
		c.st.errors.Clear()
	}
	epoch := c.st.epoch
	c.mu.Unlock()

	if len(cascade.Views) == 0 {
		return nil
	}
	c.logger.Debug("refreshing dependents", "mutation", kind, "views", len(cascade.Views))
	c.fetchViews(ctx, epoch, userID, rng, cascade.Views)
	return nil
}

// fetchViews runs one goroutine per view. Each fetch is isolated: an error in
// one never cancels the others.
func (c *Controller) fetchViews(ctx context.Context, epoch uint64, userID string, rng domain.Range, views []View) {
	c.mu.Lock()
	c.st.inflight++
	c.mu.Unlock()

	var g errgroup.Group
	for _, v := range views {
		g.Go(func() error {
			c.fetchView(ctx, epoch, userID, rng, v)
			return nil
		})
	}
	_ = g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.inflight--
	if c.st.epoch != epoch {
		return
	}
	if c.st.selection.reconcile(c.st.views.Sessions.Value, &c.st.views) {
		c.logger.Debug("selection cleared", "reason", "session no longer listed")
	}
}

func (c *Controller) fetchView(ctx context.Context, epoch uint64, userID string, rng domain.Range, v View) {
	path := viewPath(v, userID)
	start := time.Now()

	var apply func(*ViewStore)
	raw, err := c.client.Fetch(ctx, path, viewQuery(v, rng))
	if err == nil {
		apply, err = decodeView(v, raw)
		if err != nil {
			err = &domain.FetchError{Path: path, Err: err}
		}
	}
	c.metrics.RecordFetch(ctx, string(v), time.Since(start), err)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.epoch != epoch {
		c.logger.Debug("discarding superseded view", "view", v)
		return
	}
	if err != nil {
		c.st.views.clear(v)
		c.st.errors.Set(loadFailureMessage(v))
		c.logger.Error("view fetch failed", "view", v, "error", err)
		return
	}
	apply(&c.st.views)
}

// Select makes id the selected session and loads its interruptions.
// A response that arrives after a newer Select is dropped.
func (c *Controller) Select(ctx context.Context, id int64) error {
	c.mu.Lock()
	tag := c.st.selection.choose(id, &c.st.views)
	c.mu.Unlock()

	return c.fetchDetail(ctx, id, tag)
}

// LoadSessionDetail refetches interruptions for sessionID. The result only
// lands if sessionID is still selected when it arrives.
func (c *Controller) LoadSessionDetail(ctx context.Context, sessionID int64) error {
	c.mu.Lock()
	tag := c.st.selection.issue()
	c.mu.Unlock()

	return c.fetchDetail(ctx, sessionID, tag)
}

func (c *Controller) fetchDetail(ctx context.Context, sessionID int64, tag uint64) error {
	path := sessionInterruptionsPath(sessionID)
	start := time.Now()

	var apply func(*ViewStore)
	raw, err := c.client.Fetch(ctx, path, nil)
	if err == nil {
		apply, err = decodeView(ViewInterruptions, raw)
		if err != nil {
			err = &domain.FetchError{Path: path, Err: err}
		}
	}
	c.metrics.RecordFetch(ctx, string(ViewInterruptions), time.Since(start), err)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.st.selection.accepts(sessionID, tag) {
		c.metrics.RecordStaleDiscard(ctx, string(ViewInterruptions))
		c.logger.Debug("discarding stale session detail", "session_id", sessionID)
		return nil
	}
	if err != nil {
		c.st.views.Interruptions.Clear()
		c.st.errors.Set(loadFailureMessage(ViewInterruptions))
		c.logger.Error("session detail fetch failed", "session_id", sessionID, "error", err)
		return err
	}
	apply(&c.st.views)
	return nil
}

// Resume reloads a persisted context and re-selects the session if it still exists.
func (c *Controller) Resume(ctx context.Context, userID string, rng domain.Range, selected *int64) error {
	if err := c.LoadAll(ctx, userID, rng); err != nil {
		return err
	}
	if selected == nil {
		return nil
	}

	c.mu.Lock()
	found := c.st.views.Sessions.Present && domain.ContainsSession(c.st.views.Sessions.Value, *selected)
	c.mu.Unlock()
	if !found {
		return nil
	}
	return c.Select(ctx, *selected)
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		UserID:  c.st.userID,
		Range:   c.st.rng,
		Views:   c.st.views.clone(),
		Error:   c.st.errors.Message(),
		Loading: c.st.inflight > 0,
		Draft:   c.st.draft,
	}
	if id, ok := c.st.selection.Current(); ok {
		snap.SelectedSessionID = &id
	}
	return snap
}

func (c *Controller) UserID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.userID
}

func (c *Controller) Range() domain.Range {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.rng
}

func (c *Controller) SelectedSessionID() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.selection.Current()
}

func (c *Controller) Error() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.errors.Message()
}

func (c *Controller) SetDraft(d InterruptionDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d.Type == "" {
		d.Type = domain.DefaultInterruptionType
	}
	c.st.draft = d
}

func (c *Controller) Draft() InterruptionDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.draft
}

func (c *Controller) resetDraft() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.draft = defaultDraft()
}

func (c *Controller) setError(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.errors.Set(message)
}

func (c *Controller) clearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.errors.Clear()
}

// resetViews empties every slot and the selection, and supersedes in-flight loads.
func (c *Controller) resetViews() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.views.reset()
	c.st.selection.clear(&c.st.views)
	c.st.epoch++
}

type nopMetrics struct{}

func (nopMetrics) RecordFetch(context.Context, string, time.Duration, error) {}
func (nopMetrics) RecordMutation(context.Context, string, string)            {}
func (nopMetrics) RecordStaleDiscard(context.Context, string)                {}
func (nopMetrics) Close(context.Context) error                               { return nil }
