package models

import "time"

type Question struct {
	ID             string        `gorm:"primaryKey;size:36" json:"id"`
	Title          string        `gorm:"not null" json:"title"`
	Content        string        `gorm:"type:text;not null" json:"content"`
	Tags           []QuestionTag `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	Category       string        `gorm:"index" json:"category"`
	Urgency        string        `json:"urgency"`
	AuthorID       string        `gorm:"size:36;index" json:"author_id"`
	AuthorUsername string        `json:"author_username"`
	Votes          int           `gorm:"not null;default:0" json:"votes"`
	AnswersCount   int           `gorm:"not null;default:0" json:"answers_count"`
	Views          int           `gorm:"not null;default:0" json:"views"`
	CreatedAt      time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// QuestionTag is one member of a question's tag set. Tags are stored lower-cased.
type QuestionTag struct {
	QuestionID string `gorm:"primaryKey;size:36"`
	Tag        string `gorm:"primaryKey;size:64;index"`
}

func (q Question) TagNames() []string {
	names := make([]string, 0, len(q.Tags))
	for _, t := range q.Tags {
		names = append(names, t.Tag)
	}
	return names
}

type CreateQuestionRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
	Urgency  string   `json:"urgency"`
}

type QuestionResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Tags           []string  `json:"tags"`
	Category       string    `json:"category"`
	Urgency        string    `json:"urgency"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Votes          int       `json:"votes"`
	AnswersCount   int       `json:"answers_count"`
	Views          int       `json:"views"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (q Question) Response() QuestionResponse {
	return QuestionResponse{
		ID:             q.ID,
		Title:          q.Title,
		Content:        q.Content,
		Tags:           q.TagNames(),
		Category:       q.Category,
		Urgency:        q.Urgency,
		AuthorID:       q.AuthorID,
		AuthorUsername: q.AuthorUsername,
		Votes:          q.Votes,
		AnswersCount:   q.AnswersCount,
		Views:          q.Views,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}
