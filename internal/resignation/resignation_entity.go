package resignation

import (
	"time"
)

type Resignation struct {
	ID              uint      `gorm:"primaryKey"`
	EmployeeID      uint      `gorm:"not null;index"`
	ResignationDate time.Time `gorm:"type:date;not null;index"`
	Reason          string    `gorm:"type:text"`
	Notes           string    `gorm:"type:text"`
	ApprovedBy      string    `gorm:"size:255"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

// ResignationRow enriches the record with the employee's *current*
// department and position, read at query time rather than frozen at
// resignation time.
type ResignationRow struct {
	ID              uint      `gorm:"column:id"`
	EmployeeID      uint      `gorm:"column:employee_id"`
	ResignationDate time.Time `gorm:"column:resignation_date"`
	Reason          string    `gorm:"column:reason"`
	Notes           string    `gorm:"column:notes"`
	ApprovedBy      string    `gorm:"column:approved_by"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	EmployeeName    string    `gorm:"column:employee_name"`
	EmployeeCode    string    `gorm:"column:employee_code"`
	DepartmentName  *string   `gorm:"column:department_name"`
	PositionName    *string   `gorm:"column:position_name"`
}
