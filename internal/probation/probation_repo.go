package probation

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=probation_repo.go -destination=mock/probation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, pp *ProbationPeriod) error
	FindAll(ctx context.Context) ([]ProbationRow, error)
	Update(ctx context.Context, id uint, pp *ProbationPeriod) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	EmployeeExists(ctx context.Context, employeeID uint) (bool, error)
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

func (r *repository) Create(ctx context.Context, pp *ProbationPeriod) error {
	return r.db.WithContext(ctx).Create(pp).Error
}

// FindAll inner-joins employees: a probation row whose employee has been
// deleted drops out of the list, matching the consumer's expectations.
func (r *repository) FindAll(ctx context.Context) ([]ProbationRow, error) {
	var rows []ProbationRow
	err := r.db.WithContext(ctx).
		Table("probation_periods AS pp").
		Select("pp.id, pp.employee_id, pp.start_date, pp.end_date, pp.status, pp.notes, pp.created_at, " +
			"e.name AS employee_name, e.code AS employee_code").
		Joins("JOIN employees e ON pp.employee_id = e.id").
		Order("pp.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, id uint, pp *ProbationPeriod) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&ProbationPeriod{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"employee_id": pp.EmployeeID,
			"start_date":  pp.StartDate,
			"end_date":    pp.EndDate,
			"status":      pp.Status,
			"notes":       pp.Notes,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&ProbationPeriod{}, "id = ?", id)
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
