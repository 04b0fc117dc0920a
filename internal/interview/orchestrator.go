package interview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Store is the durable mapping from session id to session record.
// Implementations map a missing id to ErrNotFound.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	List(ctx context.Context) ([]Summary, error)
	Delete(ctx context.Context, id string) error
}

// Generator is the model gateway capability. Calls are stateless: the full
// accumulated history must be handed over on every invocation. Any failure
// (transport, auth, quota, timeout) is returned wrapping ErrModelUnavailable.
type Generator interface {
	Generate(ctx context.Context, prompt string, history []Message) (string, error)
}

// Orchestrator owns the interview state machine: it builds phase-specific
// prompts, appends to transcript and model history, and decides phase
// transitions. Mutating operations on the same session are serialized by a
// per-session lock; different sessions proceed in parallel.
type Orchestrator struct {
	store    Store
	gen      Generator
	compiler *Compiler
	timeout  time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewOrchestrator creates a new Orchestrator. timeout bounds every model
// gateway call.
func NewOrchestrator(store Store, gen Generator, timeout time.Duration) *Orchestrator {
	return &Orchestrator{
		store:    store,
		gen:      gen,
		compiler: NewCompiler(gen),
		timeout:  timeout,
		locks:    make(map[string]*sync.Mutex),
	}
}

// Start allocates a new session and asks the model for its opening question.
// If the model call fails, nothing is persisted and the caller retries Start
// from scratch.
func (o *Orchestrator) Start(ctx context.Context, candidateName string) (*Session, error) {
	name := strings.TrimSpace(candidateName)
	if name == "" {
		return nil, fmt.Errorf("%w: candidate name is required", ErrValidation)
	}

	s := NewSession(name)
	prompt := openingPrompt(name)

	reply, err := o.generate(ctx, prompt, nil)
	if err != nil {
		slog.Error("Failed to generate opening question", "error", err, "interview_id", s.ID)
		return nil, fmt.Errorf("opening question: %w", err)
	}

	s.ModelHistory = append(s.ModelHistory,
		Message{Role: MessageRoleUser, Content: prompt},
		Message{Role: MessageRoleModel, Content: reply},
	)
	s.Transcript = append(s.Transcript, Entry{Role: EntryRoleAI, Text: reply})

	if err := o.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save interview %s: %w", s.ID, err)
	}

	slog.Info("interview started",
		slog.String("interview_id", s.ID),
		slog.String("candidate", name),
	)
	return s, nil
}

// SubmitAnswer records the candidate's answer and asks the model for the
// next question. The candidate entry and the AI response are committed
// together, only after a successful gateway call, so a failed call leaves
// the session exactly as it was and the caller may retry with the same
// answer without duplicating it.
func (o *Orchestrator) SubmitAnswer(ctx context.Context, id, answerText string) (string, error) {
	answer := strings.TrimSpace(answerText)
	if answer == "" {
		return "", fmt.Errorf("%w: answer is required", ErrValidation)
	}

	lock := o.sessionLock(id)
	lock.Lock()
	defer lock.Unlock()

	s, err := o.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if s.Status != StatusInProgress {
		return "", fmt.Errorf("%w: interview %s is %s", ErrInvalidState, s.ID, s.Status)
	}

	prompt := followUpPrompt(answer)
	reply, err := o.generate(ctx, prompt, s.ModelHistory)
	if err != nil {
		slog.Error("Failed to generate next question", "error", err, "interview_id", s.ID)
		return "", fmt.Errorf("next question: %w", err)
	}

	s.Transcript = append(s.Transcript,
		Entry{Role: EntryRoleCandidate, Text: answer},
		Entry{Role: EntryRoleAI, Text: reply},
	)
	s.ModelHistory = append(s.ModelHistory,
		Message{Role: MessageRoleUser, Content: prompt},
		Message{Role: MessageRoleModel, Content: reply},
	)

	if err := o.store.Save(ctx, s); err != nil {
		return "", fmt.Errorf("save interview %s: %w", s.ID, err)
	}
	return reply, nil
}

// End irreversibly completes the session and compiles the feedback report.
// If feedback compilation fails the session stays COMPLETED with feedback
// unset, and calling End again retries compilation alone. Ending a session
// whose feedback is already set fails with ErrInvalidState.
func (o *Orchestrator) End(ctx context.Context, id string) (string, error) {
	lock := o.sessionLock(id)
	lock.Lock()
	defer lock.Unlock()

	s, err := o.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if s.Status == StatusCompleted && s.Feedback != nil {
		return "", fmt.Errorf("%w: interview %s already completed", ErrInvalidState, s.ID)
	}

	if s.Status == StatusInProgress {
		now := time.Now()
		s.Status = StatusCompleted
		s.EndTime = &now
		if err := o.store.Save(ctx, s); err != nil {
			return "", fmt.Errorf("save interview %s: %w", s.ID, err)
		}
	}

	cctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	feedback, err := o.compiler.Compile(cctx, s.CandidateName, s.Transcript)
	if err != nil {
		slog.Error("Failed to compile feedback", "error", err, "interview_id", s.ID)
		return "", fmt.Errorf("compile feedback: %w", err)
	}

	s.Feedback = &feedback
	if err := o.store.Save(ctx, s); err != nil {
		return "", fmt.Errorf("save interview %s: %w", s.ID, err)
	}

	slog.Info("interview completed",
		slog.String("interview_id", s.ID),
		slog.Int("turns", len(s.Transcript)),
	)
	return feedback, nil
}

func (o *Orchestrator) generate(ctx context.Context, prompt string, history []Message) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	return o.gen.Generate(cctx, prompt, history)
}

func (o *Orchestrator) sessionLock(id string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()
	l, ok := o.locks[id]
	if !ok {
		l = &sync.Mutex{}
		o.locks[id] = l
	}
	return l
}
