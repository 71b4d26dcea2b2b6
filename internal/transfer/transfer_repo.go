package transfer

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=transfer_repo.go -destination=mock/transfer_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, pt *PositionTransfer) error
	FindAll(ctx context.Context) ([]TransferRow, error)
	Delete(ctx context.Context, id uint) (int64, error)
	EmployeeExists(ctx context.Context, employeeID uint) (bool, error)
	UpdateEmployeeAssignment(ctx context.Context, employeeID uint, departmentID, positionID *uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, pt *PositionTransfer) error {
	return r.db.WithContext(ctx).Create(pt).Error
}

func (r *repository) FindAll(ctx context.Context) ([]TransferRow, error) {
	var rows []TransferRow
	err := r.db.WithContext(ctx).
		Table("position_transfers AS pt").
		Select("pt.id, pt.employee_id, pt.from_department_id, pt.from_position_id, "+
			"pt.to_department_id, pt.to_position_id, pt.transfer_date, pt.reason, pt.approved_by, pt.created_at, "+
			"e.name AS employee_name, e.code AS employee_code, "+
			"from_d.name AS from_department_name, from_p.name AS from_position_name, "+
			"to_d.name AS to_department_name, to_p.name AS to_position_name").
		Joins("JOIN employees e ON pt.employee_id = e.id").
		Joins("LEFT JOIN departments from_d ON pt.from_department_id = from_d.id").
		Joins("LEFT JOIN positions from_p ON pt.from_position_id = from_p.id").
		Joins("LEFT JOIN departments to_d ON pt.to_department_id = to_d.id").
		Joins("LEFT JOIN positions to_p ON pt.to_position_id = to_p.id").
		Order("pt.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&PositionTransfer{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

// UpdateEmployeeAssignment moves the employee's current assignment to the
// transfer's "to" values. Runs inside the same transaction as Create.
func (r *repository) UpdateEmployeeAssignment(ctx context.Context, employeeID uint, departmentID, positionID *uint) error {
	return r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Updates(map[string]interface{}{
			"department_id": departmentID,
			"position_id":   positionID,
		}).Error
}
