package resignation

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=resignation_repo.go -destination=mock/resignation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, res *Resignation) error
	FindAll(ctx context.Context) ([]ResignationRow, error)
	Delete(ctx context.Context, id uint) (int64, error)
	EmployeeExists(ctx context.Context, employeeID uint) (bool, error)
	MarkEmployeeResigned(ctx context.Context, employeeID uint) error
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

func (r *repository) Create(ctx context.Context, res *Resignation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *repository) FindAll(ctx context.Context) ([]ResignationRow, error) {
	var rows []ResignationRow
	err := r.db.WithContext(ctx).
		Table("resignations AS r").
		Select("r.id, r.employee_id, r.resignation_date, r.reason, r.notes, r.approved_by, r.created_at, "+
			"e.name AS employee_name, e.code AS employee_code, "+
			"d.name AS department_name, p.name AS position_name").
		Joins("JOIN employees e ON r.employee_id = e.id").
		Joins("LEFT JOIN departments d ON e.department_id = d.id").
		Joins("LEFT JOIN positions p ON e.position_id = p.id").
		Order("r.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Resignation{}, "id = ?", id)
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

// MarkEmployeeResigned writes the stored lifecycle status. Runs inside the
// same transaction as Create.
func (r *repository) MarkEmployeeResigned(ctx context.Context, employeeID uint) error {
	return r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Update("status", "resigned").Error
}
