package transfer

import (
	"time"
)

// PositionTransfer rows are an immutable history log; the employee row
// remains the single source of truth for current assignment.
type PositionTransfer struct {
	ID               uint      `gorm:"primaryKey"`
	EmployeeID       uint      `gorm:"not null;index"`
	FromDepartmentID *uint     `gorm:"column:from_department_id"`
	FromPositionID   *uint     `gorm:"column:from_position_id"`
	ToDepartmentID   *uint     `gorm:"column:to_department_id"`
	ToPositionID     *uint     `gorm:"column:to_position_id"`
	TransferDate     time.Time `gorm:"type:date;not null;index"`
	Reason           string    `gorm:"type:text"`
	ApprovedBy       string    `gorm:"size:255"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (PositionTransfer) TableName() string {
	return "position_transfers"
}

// TransferRow is the list read model carrying all six display names.
// The from/to names are pointers: a dangling reference yields nil, not an
// error.
type TransferRow struct {
	ID                 uint      `gorm:"column:id"`
	EmployeeID         uint      `gorm:"column:employee_id"`
	FromDepartmentID   *uint     `gorm:"column:from_department_id"`
	FromPositionID     *uint     `gorm:"column:from_position_id"`
	ToDepartmentID     *uint     `gorm:"column:to_department_id"`
	ToPositionID       *uint     `gorm:"column:to_position_id"`
	TransferDate       time.Time `gorm:"column:transfer_date"`
	Reason             string    `gorm:"column:reason"`
	ApprovedBy         string    `gorm:"column:approved_by"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	EmployeeName       string    `gorm:"column:employee_name"`
	EmployeeCode       string    `gorm:"column:employee_code"`
	FromDepartmentName *string   `gorm:"column:from_department_name"`
	FromPositionName   *string   `gorm:"column:from_position_name"`
	ToDepartmentName   *string   `gorm:"column:to_department_name"`
	ToPositionName     *string   `gorm:"column:to_position_name"`
}
