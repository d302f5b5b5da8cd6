// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package archive

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Outcome values stored on ContactMessage.Status.
const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
)

// ContactMessage is one archived submission attempt.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;index" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"type:varchar(16);not null" json:"status"`
	Error     string    `gorm:"type:text" json:"error,omitempty"`
	RequestID string    `gorm:"type:varchar(64)" json:"request_id,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides the table name used by ContactMessage to `contact_messages`
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// BeforeCreate assigns an ID when none is set.
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
