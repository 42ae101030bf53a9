package models

import "time"

type TargetKind string

const (
	TargetQuestion TargetKind = "question"
	TargetAnswer   TargetKind = "answer"
)

// Vote tracks one user's vote on a question or answer. Ownership is keyed by
// (user_id, target_id) regardless of kind; ids are UUIDs so questions and
// answers never collide.
type Vote struct {
	ID         uint       `gorm:"primaryKey" json:"-"`
	UserID     string     `gorm:"not null;uniqueIndex:idx_vote_owner" json:"user_id"`
	TargetID   string     `gorm:"not null;uniqueIndex:idx_vote_owner;index" json:"target_id"`
	TargetType TargetKind `gorm:"size:16;not null" json:"target_type"`
	Value      int        `gorm:"not null" json:"value"`
	CreatedAt  time.Time  `json:"created_at"`
}

type VoteRequest struct {
	TargetID   string     `json:"target_id" binding:"required"`
	TargetType TargetKind `json:"target_type" binding:"required,oneof=question answer"`
	Value      int        `json:"value"`
}

type VoteResponse struct {
	Votes int `json:"votes"`
}
