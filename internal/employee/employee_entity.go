package employee

import (
	"time"
)

// Lifecycle statuses. Status is stored, not recomputed: the resignation
// cascade writes StatusResigned directly.
const (
	StatusActive      = "active"
	StatusProbation   = "probation"
	StatusTransferred = "transferred"
	StatusResigned    = "resigned"
)

type Employee struct {
	ID           uint       `gorm:"primaryKey"`
	Code         string     `gorm:"size:50;not null;uniqueIndex:uq_employee_code"`
	Name         string     `gorm:"size:255;not null"`
	Gender       string     `gorm:"size:10"`
	BirthDate    *time.Time `gorm:"type:date"`
	Phone        string     `gorm:"size:50"`
	Email        string     `gorm:"size:255"`
	Address      string     `gorm:"type:text"`
	DepartmentID *uint      `gorm:"index"`
	PositionID   *uint      `gorm:"index"`
	HireDate     time.Time  `gorm:"type:date"`
	Status       string     `gorm:"size:20;not null;default:'active'"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`

	Department *EmployeeDepartment `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Position   *EmployeePosition   `gorm:"foreignKey:PositionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

type EmployeeDepartment struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}

type EmployeePosition struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
}

func (EmployeePosition) TableName() string {
	return "positions"
}
