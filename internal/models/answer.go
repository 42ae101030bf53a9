package models

import "time"

type Answer struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	QuestionID     string         `gorm:"size:36;index;not null" json:"question_id"`
	Content        string         `gorm:"type:text;not null" json:"content"`
	AuthorID       string         `gorm:"size:36;index" json:"author_id"`
	AuthorUsername string         `json:"author_username"`
	Votes          int            `gorm:"not null;default:0" json:"votes"`
	IsAccepted     bool           `gorm:"not null;default:false" json:"is_accepted"`
	Verification   AIVerification `gorm:"embedded;embeddedPrefix:ai_" json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// AIVerification is written only by the fact-check flow. A nil VerifiedAt
// means the answer was never checked.
type AIVerification struct {
	IsVerified      *bool      `json:"is_verified"`
	ConfidenceScore *float64   `json:"confidence_score"`
	Feedback        *string    `json:"feedback"`
	VerifiedAt      *time.Time `json:"verified_at"`
}

type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

type AnswerResponse struct {
	ID             string          `json:"id"`
	QuestionID     string          `json:"question_id"`
	Content        string          `json:"content"`
	AuthorID       string          `json:"author_id"`
	AuthorUsername string          `json:"author_username"`
	Votes          int             `json:"votes"`
	IsAccepted     bool            `json:"is_accepted"`
	AIVerification *AIVerification `json:"ai_verification"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (a Answer) Response() AnswerResponse {
	resp := AnswerResponse{
		ID:             a.ID,
		QuestionID:     a.QuestionID,
		Content:        a.Content,
		AuthorID:       a.AuthorID,
		AuthorUsername: a.AuthorUsername,
		Votes:          a.Votes,
		IsAccepted:     a.IsAccepted,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.Verification.VerifiedAt != nil {
		v := a.Verification
		resp.AIVerification = &v
	}
	return resp
}

type FactCheckRequest struct {
	AnswerID      string `json:"answer_id" binding:"required"`
	QuestionTitle string `json:"question_title"`
	AnswerContent string `json:"answer_content" binding:"required"`
}

type FactCheckResponse struct {
	AnswerID     string         `json:"answer_id"`
	Verification AIVerification `json:"verification"`
}
