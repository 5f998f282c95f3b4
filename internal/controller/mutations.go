package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
	"github.com/emiliopalmerini/hyperfocus/internal/ports"
)

// Outcome is the terminal state of a mutating action.
type Outcome string

const (
	OutcomeApplied  Outcome = "applied"
	OutcomeRejected Outcome = "rejected"
)

func OutcomeOf(err error) Outcome {
	if err != nil {
		return OutcomeRejected
	}
	return OutcomeApplied
}

// InterruptionInput is a parsed interruption ready for submission.
type InterruptionInput struct {
	Type        domain.InterruptionType
	Description string
	Start       time.Time
	End         time.Time
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type startSessionRequest struct {
	UserID int64 `json:"user_id"`
}

type createInterruptionRequest struct {
	UserID      int64                   `json:"user_id"`
	SessionID   int64                   `json:"session_id"`
	Type        domain.InterruptionType `json:"type"`
	Description string                  `json:"description"`
	StartTime   domain.Timestamp        `json:"start_time"`
	EndTime     domain.Timestamp        `json:"end_time"`
}

// Coordinator performs writes and runs the matching refresh cascade on success.
// Every outcome is journaled and counted.
type Coordinator struct {
	ctrl    *Controller
	journal ports.ActivityJournal
	now     func() time.Time
}

type CoordinatorOption func(*Coordinator)

func WithJournal(journal ports.ActivityJournal) CoordinatorOption {
	return func(c *Coordinator) { c.journal = journal }
}

func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *Coordinator) { c.now = now }
}

func NewCoordinator(ctrl *Controller, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{ctrl: ctrl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartSession opens a session for the active user.
func (c *Coordinator) StartSession(ctx context.Context) error {
	userID, err := c.activeUser(msgMissingUserForSession)
	if err != nil {
		return c.finish(ctx, MutationStartSession, nil, "", err)
	}

	c.ctrl.clearError()
	raw, err := c.ctrl.client.Submit(ctx, http.MethodPost, pathStartSession, startSessionRequest{UserID: userID})
	if err != nil {
		c.ctrl.setError(msgStartSessionFailed)
		return c.finish(ctx, MutationStartSession, nil, "", fmt.Errorf("starting session: %w", err))
	}

	var session domain.Session
	var sessionID *int64
	if json.Unmarshal(raw, &session) == nil && session.ID != 0 {
		sessionID = &session.ID
	}
	_ = c.ctrl.refresh(ctx, MutationStartSession, false)
	return c.finish(ctx, MutationStartSession, sessionID, "session started", nil)
}

// EndSession closes sessionID. Ending an already finished session is not
// rejected here; the cascade runs if the server accepts it.
func (c *Coordinator) EndSession(ctx context.Context, sessionID int64) error {
	id := sessionID
	if _, err := c.activeUser(msgMissingUser); err != nil {
		return c.finish(ctx, MutationEndSession, &id, "", err)
	}
	if sessionID <= 0 {
		err := &domain.ValidationError{Field: "session_id", Message: "session ID must be positive"}
		return c.finish(ctx, MutationEndSession, &id, "", err)
	}

	c.ctrl.clearError()
	if _, err := c.ctrl.client.Submit(ctx, http.MethodPost, endSessionPath(sessionID), nil); err != nil {
		c.ctrl.setError(msgEndSessionFailed)
		return c.finish(ctx, MutationEndSession, &id, "", fmt.Errorf("ending session %d: %w", sessionID, err))
	}

	_ = c.ctrl.refresh(ctx, MutationEndSession, false)
	return c.finish(ctx, MutationEndSession, &id, "session ended", nil)
}

// CreateInterruption records an interruption against the selected session.
// On success the draft is cleared, the detail reloads, then the stats refresh.
func (c *Coordinator) CreateInterruption(ctx context.Context, in InterruptionInput) error {
	sessionID, selected := c.ctrl.SelectedSessionID()
	var sid *int64
	if selected {
		sid = &sessionID
	}

	if c.ctrl.UserID() == "" || !selected {
		c.ctrl.setError(msgMissingSelection)
		err := &domain.ValidationError{Field: "session_id", Message: msgMissingSelection}
		return c.finish(ctx, MutationCreateInterruption, sid, "", err)
	}
	if in.Start.IsZero() || in.End.IsZero() {
		c.ctrl.setError(msgMissingInterval)
		err := &domain.ValidationError{Field: "interval", Message: msgMissingInterval}
		return c.finish(ctx, MutationCreateInterruption, sid, "", err)
	}
	typ := in.Type
	if typ == "" {
		typ = domain.DefaultInterruptionType
	}
	if _, err := domain.ParseInterruptionType(string(typ)); err != nil {
		c.ctrl.setError(msgInvalidInterruptionType)
		return c.finish(ctx, MutationCreateInterruption, sid, "", err)
	}
	userID, err := c.activeUser(msgMissingSelection)
	if err != nil {
		return c.finish(ctx, MutationCreateInterruption, sid, "", err)
	}

	c.ctrl.clearError()
	body := createInterruptionRequest{
		UserID:      userID,
		SessionID:   sessionID,
		Type:        typ,
		Description: strings.TrimSpace(in.Description),
		StartTime:   domain.NewTimestamp(in.Start),
		EndTime:     domain.NewTimestamp(in.End),
	}
	if _, err := c.ctrl.client.Submit(ctx, http.MethodPost, pathInterruptions, body); err != nil {
		c.ctrl.setError(msgCreateInterruptionFail)
		return c.finish(ctx, MutationCreateInterruption, sid, "", fmt.Errorf("creating interruption: %w", err))
	}

	c.ctrl.resetDraft()
	if CascadeFor(MutationCreateInterruption).Detail {
		_ = c.ctrl.LoadSessionDetail(ctx, sessionID)
	}
	_ = c.ctrl.refresh(ctx, MutationCreateInterruption, false)
	return c.finish(ctx, MutationCreateInterruption, sid, fmt.Sprintf("%s interruption recorded", typ), nil)
}

// SeedDemoData creates a demo user, one session and sample interruptions, then
// adopts the user as the active context. User and session failures abort;
// an individual interruption failure is skipped.
func (c *Coordinator) SeedDemoData(ctx context.Context) error {
	c.ctrl.clearError()
	c.ctrl.resetViews()
	now := c.now()

	raw, err := c.ctrl.client.Submit(ctx, http.MethodPost, pathUsers, createUserRequest{
		Name:  demoUserName,
		Email: demoEmail(now),
	})
	if err != nil {
		return c.abortDemo(ctx, "", fmt.Errorf("creating demo user: %w", err))
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == 0 {
		return c.abortDemo(ctx, "", &domain.FetchError{Path: pathUsers, Err: errors.New("response carries no user id")})
	}
	userID := strconv.FormatInt(user.ID, 10)

	raw, err = c.ctrl.client.Submit(ctx, http.MethodPost, pathStartSession, startSessionRequest{UserID: user.ID})
	if err != nil {
		return c.abortDemo(ctx, userID, fmt.Errorf("starting demo session: %w", err))
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil || session.ID == 0 {
		return c.abortDemo(ctx, userID, &domain.FetchError{Path: pathStartSession, Err: errors.New("response carries no session id")})
	}

	created := 0
	for _, sample := range demoInterruptions(now) {
		body := createInterruptionRequest{
			UserID:      user.ID,
			SessionID:   session.ID,
			Type:        sample.Type,
			Description: sample.Description,
			StartTime:   domain.NewTimestamp(sample.Start),
			EndTime:     domain.NewTimestamp(sample.End),
		}
		if _, err := c.ctrl.client.Submit(ctx, http.MethodPost, pathInterruptions, body); err != nil {
			c.ctrl.logger.Error("demo interruption skipped", "type", sample.Type, "error", err)
			continue
		}
		created++
	}

	if CascadeFor(MutationSeedDemo).Reload {
		if err := c.ctrl.LoadAll(ctx, userID, c.ctrl.Range()); err != nil {
			return c.finishAs(ctx, MutationSeedDemo, userID, &session.ID, "", err)
		}
	}
	msg := fmt.Sprintf("demo user %s seeded with %d of %d interruptions", userID, created, len(demoSamples))
	return c.finishAs(ctx, MutationSeedDemo, userID, &session.ID, msg, nil)
}

func (c *Coordinator) abortDemo(ctx context.Context, userID string, err error) error {
	c.ctrl.setError(msgDemoFailed)
	return c.finishAs(ctx, MutationSeedDemo, userID, nil, "", err)
}

// activeUser parses the active user id for a request body.
func (c *Coordinator) activeUser(missing string) (int64, error) {
	raw := c.ctrl.UserID()
	if raw == "" {
		c.ctrl.setError(missing)
		return 0, &domain.ValidationError{Field: "user_id", Message: missing}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.ctrl.setError(msgInvalidUser)
		return 0, &domain.ValidationError{Field: "user_id", Message: msgInvalidUser}
	}
	return id, nil
}

func (c *Coordinator) finish(ctx context.Context, kind MutationKind, sessionID *int64, message string, err error) error {
	return c.finishAs(ctx, kind, c.ctrl.UserID(), sessionID, message, err)
}

func (c *Coordinator) finishAs(ctx context.Context, kind MutationKind, userID string, sessionID *int64, message string, err error) error {
	outcome := OutcomeOf(err)
	c.ctrl.metrics.RecordMutation(ctx, string(kind), string(outcome))

	if err != nil {
		message = err.Error()
		if domain.IsValidation(err) {
			c.ctrl.logger.Debug("mutation rejected", "mutation", kind, "reason", err)
		} else {
			c.ctrl.logger.Error("mutation failed", "mutation", kind, "error", err)
		}
	} else {
		c.ctrl.logger.Debug("mutation applied", "mutation", kind)
	}

	if c.journal != nil {
		entry := ports.JournalEntry{
			Kind:      string(kind),
			Outcome:   string(outcome),
			UserID:    userID,
			SessionID: sessionID,
			Message:   message,
			CreatedAt: c.now().UTC(),
		}
		if jerr := c.journal.Record(ctx, entry); jerr != nil {
			c.ctrl.logger.Error("journal write failed", "mutation", kind, "error", jerr)
		}
	}
	return err
}
