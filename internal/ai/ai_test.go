package ai

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/qa-forum/backend/internal/profile"
)

type fakeRemote struct {
	mu      sync.Mutex
	calls   int
	err     error
	delay   time.Duration
	reply   string
	verdict Verdict
}

func (f *fakeRemote) Chat(ctx context.Context, in ChatInput) (Reply, error) {
	if err := f.wait(ctx); err != nil {
		return Reply{}, err
	}
	return Reply{Text: f.reply, Source: SourceRemote}, nil
}

func (f *fakeRemote) FactCheck(ctx context.Context, in FactCheckInput) (Verdict, error) {
	if err := f.wait(ctx); err != nil {
		return Verdict{}, err
	}
	v := f.verdict
	v.Source = SourceRemote
	return v, nil
}

func (f *fakeRemote) wait(ctx context.Context) error {
	f.mu.Lock()
	f.calls++
	err, delay := f.err, f.delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (f *fakeRemote) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type countingRecorder struct {
	mu      sync.Mutex
	calls   map[string]int
	failed   int
	latency  int
	rejected int
}

func (r *countingRecorder) AssistantCall(op, source string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = map[string]int{}
	}
	r.calls[op+"/"+source]++
}

func (r *countingRecorder) UpstreamLatency(_ string, _ time.Duration, failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latency++
	if failed {
		r.failed++
	}
}

func (r *countingRecorder) UpstreamRejected(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
}

func mustProfile(t *testing.T, name string) profile.Profile {
	t.Helper()
	p, err := profile.Lookup(name)
	require.NoError(t, err)
	return p
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		verified   *bool
		confidence float64
		feedback   string
	}{
		{
			name:       "full response",
			text:       "STATUS: verified\nCONFIDENCE: 0.9\nFEEDBACK: Matches official guidance.",
			verified:   boolPtr(true),
			confidence: 0.9,
			feedback:   "Matches official guidance.",
		},
		{
			name:       "needs review is not verified",
			text:       "STATUS: needs_review\nCONFIDENCE: 0.4\nFEEDBACK: Partly outdated.",
			verified:   boolPtr(false),
			confidence: 0.4,
			feedback:   "Partly outdated.",
		},
		{
			name:       "unparseable confidence defaults",
			text:       "STATUS: inaccurate\nCONFIDENCE: high\nFEEDBACK: Wrong form number.",
			verified:   boolPtr(false),
			confidence: 0.5,
			feedback:   "Wrong form number.",
		},
		{
			name:       "free text",
			text:       "I cannot tell.",
			confidence: 0.5,
			feedback:   "I cannot tell.",
		},
		{
			name:       "out of range confidence",
			text:       "CONFIDENCE: 7",
			confidence: 0.5,
			feedback:   "CONFIDENCE: 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseVerdict(tt.text)
			assert.Equal(t, tt.verified, v.Verified)
			assert.InDelta(t, tt.confidence, v.Confidence, 1e-9)
			assert.Equal(t, tt.feedback, v.Feedback)
		})
	}
}

func TestLocalFactCheck(t *testing.T) {
	p := mustProfile(t, profile.Immigration)
	local := NewLocal(p)
	ctx := context.Background()

	t.Run("warning words are unreliable", func(t *testing.T) {
		v, err := local.FactCheck(ctx, FactCheckInput{AnswerContent: "This is guaranteed to work."})
		require.NoError(t, err)
		require.NotNil(t, v.Verified)
		assert.False(t, *v.Verified)
		assert.Equal(t, 0.3, v.Confidence)
		assert.Equal(t, p.Feedback.Unreliable, v.Feedback)
		assert.Equal(t, SourceLocal, v.Source)
	})

	t.Run("official sources verify", func(t *testing.T) {
		v, err := local.FactCheck(ctx, FactCheckInput{AnswerContent: "See the USCIS official page for the regulation."})
		require.NoError(t, err)
		require.NotNil(t, v.Verified)
		assert.True(t, *v.Verified)
		assert.Equal(t, 0.8, v.Confidence)
	})

	t.Run("experience is undecided", func(t *testing.T) {
		v, err := local.FactCheck(ctx, FactCheckInput{AnswerContent: "In my case it took four months."})
		require.NoError(t, err)
		assert.Nil(t, v.Verified)
		assert.Equal(t, 0.6, v.Confidence)
		assert.Equal(t, p.Feedback.Experiential, v.Feedback)
	})

	t.Run("nothing recognised", func(t *testing.T) {
		v, err := local.FactCheck(ctx, FactCheckInput{AnswerContent: "Fill the form."})
		require.NoError(t, err)
		assert.Nil(t, v.Verified)
		assert.Equal(t, 0.5, v.Confidence)
		assert.Equal(t, p.Feedback.Unverified, v.Feedback)
	})

	t.Run("timeline note", func(t *testing.T) {
		v, err := local.FactCheck(ctx, FactCheckInput{
			QuestionTitle: "Green card wait",
			AnswerContent: "The processing time is about a year.",
		})
		require.NoError(t, err)
		assert.Equal(t, p.Feedback.Unverified+p.Feedback.Timeline, v.Feedback)
	})
}

func TestLocalFactCheckGenericHasNoTimelineNote(t *testing.T) {
	p := mustProfile(t, profile.Generic)
	v, err := NewLocal(p).FactCheck(context.Background(), FactCheckInput{
		QuestionTitle: "Visa timeline",
		AnswerContent: "The timeline is short.",
	})
	require.NoError(t, err)
	assert.Equal(t, p.Feedback.Unverified, v.Feedback)
}

func TestFailoverPrefersRemote(t *testing.T) {
	p := mustProfile(t, profile.Generic)
	remote := &fakeRemote{reply: "from upstream"}
	rec := &countingRecorder{}
	f := NewFailover(remote, NewLocal(p), FailoverConfig{Timeout: time.Second}, rec)

	reply, err := f.Chat(context.Background(), ChatInput{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "from upstream", reply.Text)
	assert.Equal(t, SourceRemote, reply.Source)
	assert.Equal(t, 1, rec.calls[OpChat+"/"+SourceRemote])
	assert.Equal(t, 0, rec.failed)
}

func TestFailoverFallsBackOnError(t *testing.T) {
	p := mustProfile(t, profile.Generic)
	remote := &fakeRemote{err: ErrUpstreamUnavailable}
	rec := &countingRecorder{}
	f := NewFailover(remote, NewLocal(p), FailoverConfig{Timeout: time.Second}, rec)

	reply, err := f.Chat(context.Background(), ChatInput{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, reply.Source)
	assert.Equal(t, p.FallbackReply("hello"), reply.Text)

	v, err := f.FactCheck(context.Background(), FactCheckInput{AnswerContent: "maybe"})
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, v.Source)
	assert.Equal(t, 2, rec.failed)
}

func TestFailoverTimeout(t *testing.T) {
	p := mustProfile(t, profile.Generic)
	remote := &fakeRemote{delay: time.Second, reply: "late"}
	f := NewFailover(remote, NewLocal(p), FailoverConfig{Timeout: 20 * time.Millisecond}, nil)

	start := time.Now()
	reply, err := f.Chat(context.Background(), ChatInput{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, reply.Source)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestFailoverBreakerOpens(t *testing.T) {
	p := mustProfile(t, profile.Generic)
	remote := &fakeRemote{err: errors.New("boom")}
	rec := &countingRecorder{}
	f := NewFailover(remote, NewLocal(p), FailoverConfig{
		Timeout:         time.Second,
		MaxFailures:     2,
		BreakerCooldown: time.Hour,
	}, rec)

	for i := 0; i < 5; i++ {
		reply, err := f.Chat(context.Background(), ChatInput{Message: "anything"})
		require.NoError(t, err)
		assert.Equal(t, SourceLocal, reply.Source)
	}
	assert.Equal(t, 2, remote.callCount())
	assert.Equal(t, "open", f.State())

	// Only the two real upstream calls are timed; the rest were rejected.
	assert.Equal(t, 2, rec.latency)
	assert.Equal(t, 2, rec.failed)
	assert.Equal(t, 3, rec.rejected)
	assert.Equal(t, 5, rec.calls[OpChat+"/"+SourceLocal])
}

func TestFailoverWithoutRemote(t *testing.T) {
	p := mustProfile(t, profile.Immigration)
	f := NewFailover(nil, NewLocal(p), FailoverConfig{}, nil)

	reply, err := f.Chat(context.Background(), ChatInput{Message: "How do I apply for a green card?"})
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, reply.Source)
	assert.Contains(t, reply.Text, "green card")
	assert.Equal(t, "local-only", f.State())
}
