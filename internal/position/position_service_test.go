package position_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrms/internal/position"
	positionerrors "hrms/internal/position/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePositionRepo struct {
	position.Repository

	CreateFn   func(ctx context.Context, pos *position.Position) error
	FindAllFn  func(ctx context.Context) ([]position.Position, error)
	FindByIDFn func(ctx context.Context, id uint) (*position.Position, error)
	UpdateFn   func(ctx context.Context, id uint, pos *position.Position) (int64, error)
	DeleteFn   func(ctx context.Context, id uint) (int64, error)
}

func (f *fakePositionRepo) Create(ctx context.Context, pos *position.Position) error {
	return f.CreateFn(ctx, pos)
}
func (f *fakePositionRepo) FindAll(ctx context.Context) ([]position.Position, error) {
	return f.FindAllFn(ctx)
}
func (f *fakePositionRepo) FindByID(ctx context.Context, id uint) (*position.Position, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakePositionRepo) Update(ctx context.Context, id uint, pos *position.Position) (int64, error) {
	return f.UpdateFn(ctx, id, pos)
}
func (f *fakePositionRepo) Delete(ctx context.Context, id uint) (int64, error) {
	return f.DeleteFn(ctx, id)
}

func uintPtr(v uint) *uint { return &v }

func TestPositionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakePositionRepo{
			CreateFn: func(ctx context.Context, pos *position.Position) error {
				assert.Equal(t, "Backend Engineer", pos.Name)
				assert.Equal(t, uint(2), *pos.DepartmentID)
				pos.ID = 10
				pos.CreatedAt = time.Now()
				return nil
			},
		}

		svc := position.NewService(repo)
		resp, err := svc.Create(ctx, position.CreatePositionRequest{
			Name:         "Backend Engineer",
			DepartmentID: uintPtr(2),
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(10), resp.ID)
		assert.Equal(t, uint(2), *resp.DepartmentID)
	})

	t.Run("unknown department via postgres fk violation", func(t *testing.T) {
		repo := &fakePositionRepo{
			CreateFn: func(ctx context.Context, pos *position.Position) error {
				return &pgconn.PgError{Code: "23503"}
			},
		}

		svc := position.NewService(repo)
		_, err := svc.Create(ctx, position.CreatePositionRequest{
			Name:         "Backend Engineer",
			DepartmentID: uintPtr(999),
		})

		assert.True(t, errors.Is(err, positionerrors.ErrUnknownDepartment))
	})

	t.Run("unknown department via sqlite fk message", func(t *testing.T) {
		repo := &fakePositionRepo{
			CreateFn: func(ctx context.Context, pos *position.Position) error {
				return errors.New("FOREIGN KEY constraint failed")
			},
		}

		svc := position.NewService(repo)
		_, err := svc.Create(ctx, position.CreatePositionRequest{
			Name:         "Backend Engineer",
			DepartmentID: uintPtr(999),
		})

		assert.True(t, errors.Is(err, positionerrors.ErrUnknownDepartment))
	})
}

func TestPositionService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("includes department name when preloaded", func(t *testing.T) {
		repo := &fakePositionRepo{
			FindAllFn: func(ctx context.Context) ([]position.Position, error) {
				return []position.Position{
					{
						ID:           3,
						Name:         "Backend Engineer",
						DepartmentID: uintPtr(2),
						Department:   &position.PositionDepartment{ID: 2, Name: "Engineering"},
					},
					{ID: 1, Name: "Recruiter"},
				}, nil
			},
		}

		svc := position.NewService(repo)
		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Engineering", resp[0].DepartmentName)
		assert.Empty(t, resp[1].DepartmentName)
	})

	t.Run("db error", func(t *testing.T) {
		repo := &fakePositionRepo{
			FindAllFn: func(ctx context.Context) ([]position.Position, error) {
				return nil, errors.New("db connection error")
			},
		}

		svc := position.NewService(repo)
		_, err := svc.GetAll(ctx)

		assert.Error(t, err)
	})
}

func TestPositionService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		repo := &fakePositionRepo{
			FindByIDFn: func(ctx context.Context, id uint) (*position.Position, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := position.NewService(repo)
		_, err := svc.GetByID(ctx, 42)

		assert.True(t, errors.Is(err, positionerrors.ErrPositionNotFound))
	})
}

func TestPositionService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("clearing department id persists null", func(t *testing.T) {
		repo := &fakePositionRepo{
			UpdateFn: func(ctx context.Context, id uint, pos *position.Position) (int64, error) {
				assert.Nil(t, pos.DepartmentID)
				return 1, nil
			},
		}

		svc := position.NewService(repo)
		affected, err := svc.Update(ctx, 3, position.UpdatePositionRequest{Name: "Backend Engineer"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})
}

func TestPositionService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id yields zero affected", func(t *testing.T) {
		repo := &fakePositionRepo{
			DeleteFn: func(ctx context.Context, id uint) (int64, error) {
				return 0, nil
			},
		}

		svc := position.NewService(repo)
		affected, err := svc.Delete(ctx, 404)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}
