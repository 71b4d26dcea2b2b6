package resignation

type CreateResignationRequest struct {
	EmployeeID      uint   `json:"employee_id" binding:"required"`
	ResignationDate string `json:"resignation_date" binding:"required"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes"`
	ApprovedBy      string `json:"approved_by"`
}

type ResignationResponse struct {
	ID              uint    `json:"id"`
	EmployeeID      uint    `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	EmployeeCode    string  `json:"employee_code,omitempty"`
	DepartmentName  *string `json:"department_name,omitempty"`
	PositionName    *string `json:"position_name,omitempty"`
	ResignationDate string  `json:"resignation_date"`
	Reason          string  `json:"reason,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	ApprovedBy      string  `json:"approved_by,omitempty"`
	CreatedAt       string  `json:"created_at"`
}
