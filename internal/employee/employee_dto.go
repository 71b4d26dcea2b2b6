package employee

// Code is the externally visible employee number; its wire name is
// employee_id for compatibility with the browser UI.
type CreateEmployeeRequest struct {
	Code         string `json:"employee_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Gender       string `json:"gender"`
	BirthDate    string `json:"birth_date"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	Address      string `json:"address"`
	DepartmentID *uint  `json:"department_id"`
	PositionID   *uint  `json:"position_id"`
	HireDate     string `json:"hire_date" binding:"required"`
}

// Update is a full-row replace of the same field set; lifecycle status is
// deliberately absent, it only moves via the resignation cascade.
type UpdateEmployeeRequest struct {
	Code         string `json:"employee_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Gender       string `json:"gender"`
	BirthDate    string `json:"birth_date"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	Address      string `json:"address"`
	DepartmentID *uint  `json:"department_id"`
	PositionID   *uint  `json:"position_id"`
	HireDate     string `json:"hire_date" binding:"required"`
}

type EmployeeResponse struct {
	ID             uint   `json:"id"`
	Code           string `json:"employee_id"`
	Name           string `json:"name"`
	Gender         string `json:"gender,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address,omitempty"`
	DepartmentID   *uint  `json:"department_id"`
	PositionID     *uint  `json:"position_id"`
	DepartmentName string `json:"department_name,omitempty"`
	PositionName   string `json:"position_name,omitempty"`
	HireDate       string `json:"hire_date"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

// EmployeeOption is the slim shape UI dropdowns consume.
type EmployeeOption struct {
	ID   uint   `json:"id"`
	Code string `json:"employee_id"`
	Name string `json:"name"`
}
