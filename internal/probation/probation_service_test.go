package probation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrms/internal/probation"
	probationerrors "hrms/internal/probation/errors"

	"github.com/stretchr/testify/assert"
)

type fakeProbationRepo struct {
	probation.Repository

	CreateFn         func(ctx context.Context, pp *probation.ProbationPeriod) error
	FindAllFn        func(ctx context.Context) ([]probation.ProbationRow, error)
	UpdateFn         func(ctx context.Context, id uint, pp *probation.ProbationPeriod) (int64, error)
	DeleteFn         func(ctx context.Context, id uint) (int64, error)
	EmployeeExistsFn func(ctx context.Context, employeeID uint) (bool, error)
}

func (f *fakeProbationRepo) Create(ctx context.Context, pp *probation.ProbationPeriod) error {
	return f.CreateFn(ctx, pp)
}
func (f *fakeProbationRepo) FindAll(ctx context.Context) ([]probation.ProbationRow, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeProbationRepo) Update(ctx context.Context, id uint, pp *probation.ProbationPeriod) (int64, error) {
	return f.UpdateFn(ctx, id, pp)
}
func (f *fakeProbationRepo) Delete(ctx context.Context, id uint) (int64, error) {
	return f.DeleteFn(ctx, id)
}
func (f *fakeProbationRepo) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	return f.EmployeeExistsFn(ctx, employeeID)
}

func TestProbationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new periods always start ongoing", func(t *testing.T) {
		repo := &fakeProbationRepo{
			EmployeeExistsFn: func(ctx context.Context, employeeID uint) (bool, error) {
				assert.Equal(t, uint(1), employeeID)
				return true, nil
			},
			CreateFn: func(ctx context.Context, pp *probation.ProbationPeriod) error {
				assert.Equal(t, probation.StatusOngoing, pp.Status)
				pp.ID = 5
				pp.CreatedAt = time.Now()
				return nil
			},
		}

		svc := probation.NewService(repo)
		resp, err := svc.Create(ctx, probation.CreateProbationRequest{
			EmployeeID: 1,
			StartDate:  "2024-01-01",
			EndDate:    "2024-04-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, probation.StatusOngoing, resp.Status)
		assert.Equal(t, "2024-01-01", resp.StartDate)
	})

	t.Run("unknown employee rejected before persist", func(t *testing.T) {
		repo := &fakeProbationRepo{
			EmployeeExistsFn: func(ctx context.Context, employeeID uint) (bool, error) {
				return false, nil
			},
			CreateFn: func(ctx context.Context, pp *probation.ProbationPeriod) error {
				t.Fatal("repo must not be reached")
				return nil
			},
		}

		svc := probation.NewService(repo)
		_, err := svc.Create(ctx, probation.CreateProbationRequest{
			EmployeeID: 999,
			StartDate:  "2024-01-01",
			EndDate:    "2024-04-01",
		})

		assert.True(t, errors.Is(err, probationerrors.ErrUnknownEmployee))
	})

	t.Run("malformed dates rejected", func(t *testing.T) {
		svc := probation.NewService(&fakeProbationRepo{})
		_, err := svc.Create(ctx, probation.CreateProbationRequest{
			EmployeeID: 1,
			StartDate:  "01-01-2024",
			EndDate:    "2024-04-01",
		})

		assert.True(t, errors.Is(err, probationerrors.ErrInvalidDate))
	})
}

func TestProbationService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("rows carry employee name and code", func(t *testing.T) {
		repo := &fakeProbationRepo{
			FindAllFn: func(ctx context.Context) ([]probation.ProbationRow, error) {
				return []probation.ProbationRow{
					{
						ID:           2,
						EmployeeID:   1,
						EmployeeName: "Jane Doe",
						EmployeeCode: "EMP001",
						StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
						EndDate:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
						Status:       probation.StatusOngoing,
					},
				}, nil
			},
		}

		svc := probation.NewService(repo)
		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Jane Doe", resp[0].EmployeeName)
		assert.Equal(t, "EMP001", resp[0].EmployeeCode)
	})
}

func TestProbationService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("status transition persists", func(t *testing.T) {
		repo := &fakeProbationRepo{
			EmployeeExistsFn: func(ctx context.Context, employeeID uint) (bool, error) {
				return true, nil
			},
			UpdateFn: func(ctx context.Context, id uint, pp *probation.ProbationPeriod) (int64, error) {
				assert.Equal(t, probation.StatusCompleted, pp.Status)
				return 1, nil
			},
		}

		svc := probation.NewService(repo)
		affected, err := svc.Update(ctx, 2, probation.UpdateProbationRequest{
			EmployeeID: 1,
			StartDate:  "2024-01-01",
			EndDate:    "2024-04-01",
			Status:     probation.StatusCompleted,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("missing id yields zero affected", func(t *testing.T) {
		repo := &fakeProbationRepo{
			EmployeeExistsFn: func(ctx context.Context, employeeID uint) (bool, error) {
				return true, nil
			},
			UpdateFn: func(ctx context.Context, id uint, pp *probation.ProbationPeriod) (int64, error) {
				return 0, nil
			},
		}

		svc := probation.NewService(repo)
		affected, err := svc.Update(ctx, 404, probation.UpdateProbationRequest{
			EmployeeID: 1,
			StartDate:  "2024-01-01",
			EndDate:    "2024-04-01",
			Status:     probation.StatusTerminated,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestProbationService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("db error surfaces", func(t *testing.T) {
		repo := &fakeProbationRepo{
			DeleteFn: func(ctx context.Context, id uint) (int64, error) {
				return 0, errors.New("db down")
			},
		}

		svc := probation.NewService(repo)
		_, err := svc.Delete(ctx, 2)

		assert.Error(t, err)
	})
}
