package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"careercompass/internal/cache"
	"careercompass/internal/engine"
	"careercompass/internal/model"
	"careercompass/internal/repository"
	"careercompass/internal/scoring"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNotSessionOwner = errors.New("session belongs to another user")
	ErrNotComplete     = errors.New("session is not complete")
)

// SessionView is the API-facing snapshot returned after every event: the
// next prompt, the projected transcript, and the score once complete.
type SessionView struct {
	Session    *model.Session          `json:"session"`
	Phase      model.Phase             `json:"phase"`
	Prompt     *model.Prompt           `json:"prompt,omitempty"`
	Transcript []model.TranscriptEntry `json:"transcript"`
	Score      *model.ScoreResult      `json:"score,omitempty"`
}

// SessionService orchestrates assessment sessions: it feeds user input
// events into the conversation engine, snapshots state to Redis after every
// event, and on completion scores the answers and persists the assessment.
type SessionService struct {
	schema         model.Schema
	sessions       cache.SessionCache
	assessmentRepo repository.AssessmentRepo
	broadcaster    Broadcaster
}

// NewSessionService creates a new session service
func NewSessionService(schema model.Schema, sessions cache.SessionCache, assessmentRepo repository.AssessmentRepo) *SessionService {
	return &SessionService{
		schema:         schema,
		sessions:       sessions,
		assessmentRepo: assessmentRepo,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start creates a new session for the user at the first question.
func (s *SessionService) Start(ctx context.Context, userID string) (*SessionView, error) {
	now := time.Now()
	session := &model.Session{
		ID:        "s_" + uuid.New().String()[:8],
		UserID:    userID,
		StartedAt: now,
		UpdatedAt: now,
	}

	ctrl := engine.New(s.schema)

	if err := s.sessions.SetSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	if err := s.saveState(ctx, session.ID, ctrl); err != nil {
		return nil, err
	}

	return s.view(session, ctrl), nil
}

// Get returns the current state of a session.
func (s *SessionService) Get(ctx context.Context, userID, sessionID string) (*SessionView, error) {
	session, ctrl, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(session, ctrl), nil
}

// Submit feeds an answer event into the conversation. A validation failure
// is returned as *model.ValidationError with all state untouched; the
// caller re-prompts. When the event completes the conversation, the final
// persist is awaited before returning.
func (s *SessionService) Submit(ctx context.Context, userID, sessionID string, in model.AnswerInput) (*SessionView, error) {
	session, ctrl, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := ctrl.Submit(in); err != nil {
		return nil, err
	}

	return s.commit(ctx, session, ctrl)
}

// ConfirmRepeat feeds the add-another-entry control event.
func (s *SessionService) ConfirmRepeat(ctx context.Context, userID, sessionID string, again bool) (*SessionView, error) {
	session, ctrl, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := ctrl.ConfirmRepeat(again); err != nil {
		return nil, err
	}

	return s.commit(ctx, session, ctrl)
}

// Finalize retries the final persist of a completed session. The cached
// state survives a failed persist, so this can be called until it succeeds
// without re-running the conversation; the upsert is idempotent.
func (s *SessionService) Finalize(ctx context.Context, userID, sessionID string) (*SessionView, error) {
	session, ctrl, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if ctrl.Phase() != model.PhaseComplete {
		return nil, ErrNotComplete
	}
	score, err := s.finalize(ctx, session, ctrl)
	if err != nil {
		return nil, err
	}
	view := s.view(session, ctrl)
	view.Score = score
	return view, nil
}

// commit saves the post-event state, broadcasts the update, and runs the
// completion hand-off when the conversation just ended.
func (s *SessionService) commit(ctx context.Context, session *model.Session, ctrl *engine.Controller) (*SessionView, error) {
	session.UpdatedAt = time.Now()
	if err := s.sessions.SetSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	if err := s.saveState(ctx, session.ID, ctrl); err != nil {
		return nil, err
	}

	view := s.view(session, ctrl)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(session.UserID, "transcript_update", view)
	}

	if ctrl.Phase() == model.PhaseComplete {
		score, err := s.finalize(ctx, session, ctrl)
		if err != nil {
			// The conversation state is already saved; the caller can
			// retry the persist via Finalize.
			return view, fmt.Errorf("assessment persist failed: %w", err)
		}
		view.Score = score
	}

	return view, nil
}

// finalize scores the completed answer store and upserts the assessment.
// The write is awaited so COMPLETE is never reported with the answers lost.
func (s *SessionService) finalize(ctx context.Context, session *model.Session, ctrl *engine.Controller) (*model.ScoreResult, error) {
	answers := ctrl.Answers().Clone()
	score := scoring.Score(answers)

	assessment := &model.Assessment{
		UserID:      session.UserID,
		SessionID:   session.ID,
		Answers:     answers,
		Enriched:    scoring.Enrich(answers, s.schema),
		Score:       score,
		CompletedAt: time.Now(),
	}

	if err := s.assessmentRepo.Upsert(ctx, assessment); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(session.UserID, "assessment_complete", score)
	}

	return &score, nil
}

func (s *SessionService) load(ctx context.Context, userID, sessionID string) (*model.Session, *engine.Controller, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, ErrSessionNotFound
	}
	if session.UserID != userID {
		return nil, nil, ErrNotSessionOwner
	}

	state, err := s.sessions.GetState(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if state == nil {
		return nil, nil, ErrSessionNotFound
	}

	return session, engine.Restore(s.schema, *state), nil
}

func (s *SessionService) saveState(ctx context.Context, sessionID string, ctrl *engine.Controller) error {
	state := ctrl.Snapshot()
	if err := s.sessions.SetState(ctx, sessionID, &state); err != nil {
		return fmt.Errorf("failed to save conversation state: %w", err)
	}
	return nil
}

func (s *SessionService) view(session *model.Session, ctrl *engine.Controller) *SessionView {
	return &SessionView{
		Session:    session,
		Phase:      ctrl.Phase(),
		Prompt:     ctrl.Current(),
		Transcript: engine.Project(ctrl),
	}
}
