// internal/models/log.go
package models

import "time"

// LogEntry is one line of the append-only job log.
type LogEntry struct {
	ID      uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	TS      time.Time `json:"ts" gorm:"column:ts;index"`
	Level   string    `json:"level" gorm:"size:10"`
	Message string    `json:"message" gorm:"type:text"`
}

func (LogEntry) TableName() string { return "logs" }

const (
	LogLevelInfo  = "INFO"
	LogLevelError = "ERROR"
)
