package probation

import (
	"time"
)

const (
	StatusOngoing    = "ongoing"
	StatusCompleted  = "completed"
	StatusTerminated = "terminated"
)

type ProbationPeriod struct {
	ID         uint      `gorm:"primaryKey"`
	EmployeeID uint      `gorm:"not null;index"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	Status     string    `gorm:"size:20;not null;default:'ongoing'"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (ProbationPeriod) TableName() string {
	return "probation_periods"
}

// ProbationRow is the list read model with employee enrichment.
type ProbationRow struct {
	ID           uint      `gorm:"column:id"`
	EmployeeID   uint      `gorm:"column:employee_id"`
	StartDate    time.Time `gorm:"column:start_date"`
	EndDate      time.Time `gorm:"column:end_date"`
	Status       string    `gorm:"column:status"`
	Notes        string    `gorm:"column:notes"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	EmployeeName string    `gorm:"column:employee_name"`
	EmployeeCode string    `gorm:"column:employee_code"`
}
