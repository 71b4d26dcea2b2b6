package transfer

type CreateTransferRequest struct {
	EmployeeID       uint   `json:"employee_id" binding:"required"`
	FromDepartmentID *uint  `json:"from_department_id"`
	FromPositionID   *uint  `json:"from_position_id"`
	ToDepartmentID   *uint  `json:"to_department_id" binding:"required"`
	ToPositionID     *uint  `json:"to_position_id" binding:"required"`
	TransferDate     string `json:"transfer_date" binding:"required"`
	Reason           string `json:"reason"`
	ApprovedBy       string `json:"approved_by"`
}

type TransferResponse struct {
	ID                 uint    `json:"id"`
	EmployeeID         uint    `json:"employee_id"`
	EmployeeName       string  `json:"employee_name,omitempty"`
	EmployeeCode       string  `json:"employee_code,omitempty"`
	FromDepartmentID   *uint   `json:"from_department_id"`
	FromPositionID     *uint   `json:"from_position_id"`
	ToDepartmentID     *uint   `json:"to_department_id"`
	ToPositionID       *uint   `json:"to_position_id"`
	FromDepartmentName *string `json:"from_department_name,omitempty"`
	FromPositionName   *string `json:"from_position_name,omitempty"`
	ToDepartmentName   *string `json:"to_department_name,omitempty"`
	ToPositionName     *string `json:"to_position_name,omitempty"`
	TransferDate       string  `json:"transfer_date"`
	Reason             string  `json:"reason,omitempty"`
	ApprovedBy         string  `json:"approved_by,omitempty"`
	CreatedAt          string  `json:"created_at"`
}
