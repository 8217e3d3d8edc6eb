// file: internals/features/school/sessions/model/academic_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL - academic_sessions (tahun ajaran)
============================================== */

type AcademicSession struct {
	AcademicSessionID   uuid.UUID `gorm:"column:academic_session_id;type:uuid;primaryKey" json:"academic_session_id"`
	AcademicSessionName string    `gorm:"column:academic_session_name;type:varchar(40);not null" json:"academic_session_name"` // contoh: "2025/2026"

	AcademicSessionStartYear int `gorm:"column:academic_session_start_year;type:smallint;not null" json:"academic_session_start_year"`
	AcademicSessionEndYear   int `gorm:"column:academic_session_end_year;type:smallint;not null" json:"academic_session_end_year"`

	AcademicSessionIsActive bool `gorm:"column:academic_session_is_active;not null;default:false;index" json:"academic_session_is_active"`

	AcademicSessionCreatedAt time.Time      `gorm:"column:academic_session_created_at;not null" json:"academic_session_created_at"`
	AcademicSessionUpdatedAt time.Time      `gorm:"column:academic_session_updated_at;not null" json:"academic_session_updated_at"`
	AcademicSessionDeletedAt gorm.DeletedAt `gorm:"column:academic_session_deleted_at;index" json:"-"`
}

func (AcademicSession) TableName() string { return "academic_sessions" }

func (m *AcademicSession) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.AcademicSessionID == uuid.Nil {
		m.AcademicSessionID = uuid.New()
	}
	if m.AcademicSessionCreatedAt.IsZero() {
		m.AcademicSessionCreatedAt = now
	}
	m.AcademicSessionUpdatedAt = now
	return nil
}

func (m *AcademicSession) BeforeUpdate(tx *gorm.DB) error {
	m.AcademicSessionUpdatedAt = time.Now()
	return nil
}
