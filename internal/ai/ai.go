// Package ai fronts the external LLM used for chat assistance and answer
// fact-checking. Every capability has a remote implementation and a local
// deterministic one; Failover chooses between them.
package ai

import (
	"context"
	"errors"
	"time"
)

// ErrUpstreamUnavailable marks a failure of the remote model. It is
// recovered by the local fallback and never reaches API callers.
var ErrUpstreamUnavailable = errors.New("ai upstream unavailable")

const (
	SourceRemote = "remote"
	SourceLocal  = "local"

	OpChat      = "chat"
	OpFactCheck = "fact_check"
)

type Assistant interface {
	Chat(ctx context.Context, in ChatInput) (Reply, error)
	FactCheck(ctx context.Context, in FactCheckInput) (Verdict, error)
}

type ChatInput struct {
	UserID    string
	SessionID string
	Message   string
}

type Reply struct {
	Text   string
	Source string
}

type FactCheckInput struct {
	AnswerID      string
	QuestionTitle string
	AnswerContent string
}

// Verdict is nil-Verified when the checker could not decide.
type Verdict struct {
	Verified   *bool
	Confidence float64
	Feedback   string
	Source     string
}

// Recorder receives assistant call outcomes; metrics.Metrics implements it.
type Recorder interface {
	AssistantCall(operation, source string)
	UpstreamLatency(operation string, d time.Duration, failed bool)
	// UpstreamRejected counts calls the open breaker never let through.
	UpstreamRejected(operation string)
}

type nopRecorder struct{}

func (nopRecorder) AssistantCall(string, string)                {}
func (nopRecorder) UpstreamLatency(string, time.Duration, bool) {}
func (nopRecorder) UpstreamRejected(string)                     {}
