package models

import "time"

// ChatRecord is a write-only log of assistant exchanges.
type ChatRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Variant   string    `gorm:"size:32;index"`
	UserID    string    `gorm:"size:36;index"`
	SessionID string    `gorm:"index"`
	Message   string    `gorm:"type:text"`
	Response  string    `gorm:"type:text"`
	Source    string    `gorm:"size:16"` // "remote" or "local"
	CreatedAt time.Time
}

type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}
