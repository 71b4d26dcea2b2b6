package report

import (
	"time"
)

// DateRange carries the parsed inclusive report bounds.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewHireRow is scanned straight from the employees join.
type NewHireRow struct {
	ID             uint      `gorm:"column:id"`
	Code           string    `gorm:"column:code"`
	Name           string    `gorm:"column:name"`
	DepartmentName *string   `gorm:"column:department_name"`
	PositionName   *string   `gorm:"column:position_name"`
	HireDate       time.Time `gorm:"column:hire_date"`
	Status         string    `gorm:"column:status"`
}

type ResignationReportRow struct {
	ID              uint      `gorm:"column:id"`
	EmployeeID      uint      `gorm:"column:employee_id"`
	EmployeeName    string    `gorm:"column:employee_name"`
	EmployeeCode    string    `gorm:"column:employee_code"`
	DepartmentName  *string   `gorm:"column:department_name"`
	PositionName    *string   `gorm:"column:position_name"`
	ResignationDate time.Time `gorm:"column:resignation_date"`
	Reason          string    `gorm:"column:reason"`
	ApprovedBy      string    `gorm:"column:approved_by"`
}

type TransferReportRow struct {
	ID                 uint      `gorm:"column:id"`
	EmployeeID         uint      `gorm:"column:employee_id"`
	EmployeeName       string    `gorm:"column:employee_name"`
	EmployeeCode       string    `gorm:"column:employee_code"`
	FromDepartmentName *string   `gorm:"column:from_department_name"`
	FromPositionName   *string   `gorm:"column:from_position_name"`
	ToDepartmentName   *string   `gorm:"column:to_department_name"`
	ToPositionName     *string   `gorm:"column:to_position_name"`
	TransferDate       time.Time `gorm:"column:transfer_date"`
	Reason             string    `gorm:"column:reason"`
	ApprovedBy         string    `gorm:"column:approved_by"`
}

type NewHireResponse struct {
	ID             uint    `json:"id"`
	Code           string  `json:"employee_id"`
	Name           string  `json:"name"`
	DepartmentName *string `json:"department_name,omitempty"`
	PositionName   *string `json:"position_name,omitempty"`
	HireDate       string  `json:"hire_date"`
	Status         string  `json:"status"`
}

type ResignationReportResponse struct {
	ID              uint    `json:"id"`
	EmployeeID      uint    `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	EmployeeCode    string  `json:"employee_code"`
	DepartmentName  *string `json:"department_name,omitempty"`
	PositionName    *string `json:"position_name,omitempty"`
	ResignationDate string  `json:"resignation_date"`
	Reason          string  `json:"reason,omitempty"`
	ApprovedBy      string  `json:"approved_by,omitempty"`
}

type TransferReportResponse struct {
	ID                 uint    `json:"id"`
	EmployeeID         uint    `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	EmployeeCode       string  `json:"employee_code"`
	FromDepartmentName *string `json:"from_department_name,omitempty"`
	FromPositionName   *string `json:"from_position_name,omitempty"`
	ToDepartmentName   *string `json:"to_department_name,omitempty"`
	ToPositionName     *string `json:"to_position_name,omitempty"`
	TransferDate       string  `json:"transfer_date"`
	Reason             string  `json:"reason,omitempty"`
	ApprovedBy         string  `json:"approved_by,omitempty"`
}
