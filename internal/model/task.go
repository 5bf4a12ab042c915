package model

import "github.com/lib/pq"

// Repeat frequencies for repetitive tasks
const (
	RepeatWeekly      = "Weekly"
	RepeatFortnightly = "Fortnightly"
	RepeatMonthly     = "Monthly"
)

type Task struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	ProjectID       uint           `json:"projectId" gorm:"index;not null"`
	Title           string         `json:"title" gorm:"not null"`
	Body            string         `json:"body" gorm:"not null"`
	Assignees       pq.StringArray `json:"assignees" gorm:"type:text[]"`
	Labels          pq.StringArray `json:"labels" gorm:"type:text[]"`
	IsActive        bool           `json:"is_active" gorm:"default:true"`
	IsRepetitive    bool           `json:"is_repetitive"`
	RepeatFrequency *string        `json:"repeat_frequency,omitempty"`
}

// TaskPatch carries a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	ProjectID       *uint     `json:"projectId,omitempty"`
	Title           *string   `json:"title,omitempty" binding:"omitempty,min=1"`
	Body            *string   `json:"body,omitempty" binding:"omitempty,min=1"`
	Assignees       *[]string `json:"assignees,omitempty"`
	Labels          *[]string `json:"labels,omitempty"`
	IsActive        *bool     `json:"is_active,omitempty"`
	IsRepetitive    *bool     `json:"is_repetitive,omitempty"`
	RepeatFrequency *string   `json:"repeat_frequency,omitempty" binding:"omitempty,oneof=Weekly Fortnightly Monthly"`
}

// Apply merges the patch into the task and normalizes the repeat fields.
func (t *Task) Apply(patch TaskPatch) {
	if patch.ProjectID != nil {
		t.ProjectID = *patch.ProjectID
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Body != nil {
		t.Body = *patch.Body
	}
	if patch.Assignees != nil {
		t.Assignees = pq.StringArray(*patch.Assignees)
	}
	if patch.Labels != nil {
		t.Labels = pq.StringArray(*patch.Labels)
	}
	if patch.IsActive != nil {
		t.IsActive = *patch.IsActive
	}
	if patch.IsRepetitive != nil {
		t.IsRepetitive = *patch.IsRepetitive
	}
	if patch.RepeatFrequency != nil {
		freq := *patch.RepeatFrequency
		t.RepeatFrequency = &freq
	}
	t.Normalize()
}

// Normalize enforces that repeat_frequency is only set on repetitive tasks.
func (t *Task) Normalize() {
	if !t.IsRepetitive {
		t.RepeatFrequency = nil
	}
}
