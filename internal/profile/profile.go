// Package profile describes the domain-specific parts of a deployment: the
// assistant prompts, fallback replies and user fields that differ between
// the generic Q&A site and the immigration-themed one.
package profile

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	Generic     = "generic"
	Immigration = "immigration"
)

// Topic is a keyword-triggered canned reply used when the remote assistant
// is unavailable.
type Topic struct {
	Keywords []string
	Reply    string
}

// Indicators are the phrase lists the rule-based fact checker counts.
type Indicators struct {
	High    []string
	Medium  []string
	Low     []string
	Warning []string
}

type Profile struct {
	Name          string
	ServiceName   string
	ChatPath      string
	SessionPrefix string

	ChatSystemPrompt      string
	FactCheckSystemPrompt string
	FactCheckSubject      string

	Topics        []Topic
	DefaultReply  string
	Indicators    Indicators
	Feedback      Feedback
	TimelineTerms []string

	// ExtendedUserFields exposes origin/location/status on the user profile.
	ExtendedUserFields bool
	DefaultUrgency     string
}

// Feedback holds the fixed messages the rule-based fact checker returns.
type Feedback struct {
	Unreliable   string
	Sourced      string
	Experiential string
	Unverified   string
	Timeline     string
}

// Lookup returns the profile registered under name.
func Lookup(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Generic, "":
		return generic, nil
	case Immigration:
		return immigration, nil
	default:
		return Profile{}, fmt.Errorf("unknown variant %q", name)
	}
}

// FallbackReply picks the first topic with a keyword present in message.
// Keywords match on word boundaries so "hi" does not fire on "this", and
// keywords of three or more characters also match their plural.
func (p Profile) FallbackReply(message string) string {
	padded := " " + normalizeWords(message) + " "
	for _, t := range p.Topics {
		for _, kw := range t.Keywords {
			if containsKeyword(padded, kw) {
				return t.Reply
			}
		}
	}
	return fmt.Sprintf(p.DefaultReply, message)
}

const minPluralKeyword = 3

func containsKeyword(padded, kw string) bool {
	if strings.Contains(padded, " "+kw+" ") {
		return true
	}
	if len(kw) < minPluralKeyword {
		return false
	}
	return strings.Contains(padded, " "+kw+"s ") || strings.Contains(padded, " "+kw+"es ")
}

func normalizeWords(s string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-':
			return unicode.ToLower(r)
		default:
			return ' '
		}
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

// FactCheckPrompt renders the user prompt sent to the remote fact checker.
func (p Profile) FactCheckPrompt(questionTitle, answer string) string {
	return fmt.Sprintf(`Please fact-check this %s answer:

Question: %s
Answer: %s

Please analyze and provide:
1. Verification status (verified/needs_review/inaccurate)
2. Confidence score (0.0-1.0)
3. Feedback explaining your assessment

Format your response as:
STATUS: [verified/needs_review/inaccurate]
CONFIDENCE: [0.0-1.0]
FEEDBACK: [Your detailed feedback]`, p.FactCheckSubject, questionTitle, answer)
}
