package ai

import (
	"context"
	"strings"

	"github.com/emilythestrangee/qa-forum/backend/internal/profile"
)

// Local answers from keyword templates and scores answers by counting
// accuracy indicator phrases. It never fails.
type Local struct {
	profile profile.Profile
}

func NewLocal(p profile.Profile) *Local {
	return &Local{profile: p}
}

func (l *Local) Chat(_ context.Context, in ChatInput) (Reply, error) {
	return Reply{Text: l.profile.FallbackReply(in.Message), Source: SourceLocal}, nil
}

func (l *Local) FactCheck(_ context.Context, in FactCheckInput) (Verdict, error) {
	question := strings.ToLower(in.QuestionTitle)
	answer := strings.ToLower(in.AnswerContent)
	ind := l.profile.Indicators
	fb := l.profile.Feedback

	high := countTerms(answer, ind.High)
	medium := countTerms(answer, ind.Medium)
	low := countTerms(answer, ind.Low)
	warning := countTerms(answer, ind.Warning)

	var v Verdict
	switch {
	case warning > 0 || low > 2:
		v = Verdict{Verified: boolPtr(false), Confidence: 0.3, Feedback: fb.Unreliable}
	case high >= 2:
		v = Verdict{Verified: boolPtr(true), Confidence: 0.8, Feedback: fb.Sourced}
	case medium > 0:
		v = Verdict{Confidence: 0.6, Feedback: fb.Experiential}
	default:
		v = Verdict{Confidence: 0.5, Feedback: fb.Unverified}
	}

	if fb.Timeline != "" && countTerms(question, l.profile.TimelineTerms) > 0 &&
		(strings.Contains(answer, "timeline") || strings.Contains(answer, "processing time")) {
		v.Feedback += fb.Timeline
	}

	v.Source = SourceLocal
	return v, nil
}

func countTerms(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

func boolPtr(b bool) *bool {
	return &b
}
