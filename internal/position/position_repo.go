package position

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, pos *Position) error
	FindAll(ctx context.Context) ([]Position, error)
	FindByID(ctx context.Context, id uint) (*Position, error)
	Update(ctx context.Context, id uint, pos *Position) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
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

func (r *repository) Create(ctx context.Context, pos *Position) error {
	return r.db.WithContext(ctx).Omit("Department").Create(pos).Error
}

// FindAll preloads the department read model; a dangling department_id
// simply leaves Department nil.
func (r *repository) FindAll(ctx context.Context) ([]Position, error) {
	var positions []Position
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("id DESC").
		Find(&positions).Error
	return positions, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Position, error) {
	var pos Position
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&pos, "id = ?", id).Error
	return &pos, err
}

func (r *repository) Update(ctx context.Context, id uint, pos *Position) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Position{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":          pos.Name,
			"description":   pos.Description,
			"department_id": pos.DepartmentID,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Position{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
