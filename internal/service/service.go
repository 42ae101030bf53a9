// Package service implements the forum operations on top of the stores.
package service

import "time"

// Clock returns the current time.
type Clock func() time.Time

// Services bundles every service the HTTP layer needs.
type Services struct {
	Auth      *AuthService
	Questions *QuestionService
	Votes     *VoteLedger
	Search    *SearchService
	Assistant *AssistantService
}
