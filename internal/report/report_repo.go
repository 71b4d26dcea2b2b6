package report

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	NewHires(ctx context.Context, r DateRange) ([]NewHireRow, error)
	Resignations(ctx context.Context, r DateRange) ([]ResignationReportRow, error)
	Transfers(ctx context.Context, r DateRange) ([]TransferReportRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// BETWEEN keeps both bounds inclusive.
func (r *repository) NewHires(ctx context.Context, rng DateRange) ([]NewHireRow, error) {
	var rows []NewHireRow
	err := r.db.WithContext(ctx).
		Table("employees AS e").
		Select("e.id, e.code, e.name, e.hire_date, e.status, "+
			"d.name AS department_name, p.name AS position_name").
		Joins("LEFT JOIN departments d ON e.department_id = d.id").
		Joins("LEFT JOIN positions p ON e.position_id = p.id").
		Where("e.hire_date BETWEEN ? AND ?", rng.Start, rng.End).
		Order("e.hire_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Resignations(ctx context.Context, rng DateRange) ([]ResignationReportRow, error) {
	var rows []ResignationReportRow
	err := r.db.WithContext(ctx).
		Table("resignations AS r").
		Select("r.id, r.employee_id, r.resignation_date, r.reason, r.approved_by, "+
			"e.name AS employee_name, e.code AS employee_code, "+
			"d.name AS department_name, p.name AS position_name").
		Joins("JOIN employees e ON r.employee_id = e.id").
		Joins("LEFT JOIN departments d ON e.department_id = d.id").
		Joins("LEFT JOIN positions p ON e.position_id = p.id").
		Where("r.resignation_date BETWEEN ? AND ?", rng.Start, rng.End).
		Order("r.resignation_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Transfers(ctx context.Context, rng DateRange) ([]TransferReportRow, error) {
	var rows []TransferReportRow
	err := r.db.WithContext(ctx).
		Table("position_transfers AS pt").
		Select("pt.id, pt.employee_id, pt.transfer_date, pt.reason, pt.approved_by, "+
			"e.name AS employee_name, e.code AS employee_code, "+
			"from_d.name AS from_department_name, from_p.name AS from_position_name, "+
			"to_d.name AS to_department_name, to_p.name AS to_position_name").
		Joins("JOIN employees e ON pt.employee_id = e.id").
		Joins("LEFT JOIN departments from_d ON pt.from_department_id = from_d.id").
		Joins("LEFT JOIN positions from_p ON pt.from_position_id = from_p.id").
		Joins("LEFT JOIN departments to_d ON pt.to_department_id = to_d.id").
		Joins("LEFT JOIN positions to_p ON pt.to_position_id = to_p.id").
		Where("pt.transfer_date BETWEEN ? AND ?", rng.Start, rng.End).
		Order("pt.transfer_date DESC").
		Scan(&rows).Error
	return rows, err
}
