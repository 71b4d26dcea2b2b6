package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hrms/internal/department"
	departmenterrors "hrms/internal/department/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepo struct {
	department.Repository

	CreateFn   func(ctx context.Context, dept *department.Department) error
	FindAllFn  func(ctx context.Context) ([]department.Department, error)
	FindByIDFn func(ctx context.Context, id uint) (*department.Department, error)
	UpdateFn   func(ctx context.Context, id uint, dept *department.Department) (int64, error)
	DeleteFn   func(ctx context.Context, id uint) (int64, error)
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept *department.Department) error {
	return f.CreateFn(ctx, dept)
}
func (f *fakeDepartmentRepo) FindAll(ctx context.Context) ([]department.Department, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeDepartmentRepo) FindByID(ctx context.Context, id uint) (*department.Department, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeDepartmentRepo) Update(ctx context.Context, id uint, dept *department.Department) (int64, error) {
	return f.UpdateFn(ctx, id, dept)
}
func (f *fakeDepartmentRepo) Delete(ctx context.Context, id uint) (int64, error) {
	return f.DeleteFn(ctx, id)
}

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()

		cached := []department.DepartmentResponse{
			{ID: 2, Name: "Engineering"},
			{ID: 1, Name: "HR"},
		}
		jsonResp, _ := json.Marshal(cached)
		redisMock.ExpectGet(department.AllDepartmentsKey).SetVal(string(jsonResp))

		repoCalled := false
		repo := &fakeDepartmentRepo{
			FindAllFn: func(ctx context.Context) ([]department.Department, error) {
				repoCalled = true
				return nil, nil
			},
		}

		svc := department.NewService(repo, rdb)
		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Engineering", resp[0].Name)
		assert.False(t, repoCalled)
	})

	t.Run("cache miss reads the database and fills the cache", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(department.AllDepartmentsKey).RedisNil()

		repo := &fakeDepartmentRepo{
			FindAllFn: func(ctx context.Context) ([]department.Department, error) {
				return []department.Department{
					{ID: 3, Name: "Finance", CreatedAt: time.Now()},
				}, nil
			},
		}

		redisMock.Regexp().ExpectSet(department.AllDepartmentsKey, `.*`, 30*time.Minute).SetVal("OK")

		svc := department.NewService(repo, rdb)
		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Finance", resp[0].Name)
	})

	t.Run("database error surfaces", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			FindAllFn: func(ctx context.Context) ([]department.Department, error) {
				return nil, errors.New("db connection error")
			},
		}

		svc := department.NewService(repo, nil)
		resp, err := svc.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates the list cache", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(department.AllDepartmentsKey).SetVal(1)

		repo := &fakeDepartmentRepo{
			CreateFn: func(ctx context.Context, dept *department.Department) error {
				assert.Equal(t, "HR", dept.Name)
				dept.ID = 7
				dept.CreatedAt = time.Now()
				return nil
			},
		}

		svc := department.NewService(repo, rdb)
		resp, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "HR", Description: "People"})

		assert.NoError(t, err)
		assert.Equal(t, uint(7), resp.ID)
		assert.Equal(t, "HR", resp.Name)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("repo error", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			CreateFn: func(ctx context.Context, dept *department.Department) error {
				return errors.New("db error")
			},
		}

		svc := department.NewService(repo, nil)
		_, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "HR"})

		assert.Error(t, err)
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			FindByIDFn: func(ctx context.Context, id uint) (*department.Department, error) {
				assert.Equal(t, uint(4), id)
				return &department.Department{ID: 4, Name: "HR", CreatedAt: time.Now()}, nil
			},
		}

		svc := department.NewService(repo, nil)
		resp, err := svc.GetByID(ctx, 4)

		assert.NoError(t, err)
		assert.Equal(t, uint(4), resp.ID)
	})

	t.Run("not found maps to the module sentinel", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			FindByIDFn: func(ctx context.Context, id uint) (*department.Department, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := department.NewService(repo, nil)
		_, err := svc.GetByID(ctx, 99)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, departmenterrors.ErrDepartmentNotFound))
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("returns affected count and invalidates cache", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(department.AllDepartmentsKey).SetVal(1)

		repo := &fakeDepartmentRepo{
			UpdateFn: func(ctx context.Context, id uint, dept *department.Department) (int64, error) {
				assert.Equal(t, "HR Updated", dept.Name)
				return 1, nil
			},
		}

		svc := department.NewService(repo, rdb)
		affected, err := svc.Update(ctx, 4, department.UpdateDepartmentRequest{Name: "HR Updated"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("missing id yields zero affected, not an error", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			UpdateFn: func(ctx context.Context, id uint, dept *department.Department) (int64, error) {
				return 0, nil
			},
		}

		svc := department.NewService(repo, nil)
		affected, err := svc.Update(ctx, 9999, department.UpdateDepartmentRequest{Name: "Ghost"})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(department.AllDepartmentsKey).SetVal(1)

		repo := &fakeDepartmentRepo{
			DeleteFn: func(ctx context.Context, id uint) (int64, error) {
				assert.Equal(t, uint(4), id)
				return 1, nil
			},
		}

		svc := department.NewService(repo, rdb)
		affected, err := svc.Delete(ctx, 4)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("db error", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			DeleteFn: func(ctx context.Context, id uint) (int64, error) {
				return 0, errors.New("db error")
			},
		}

		svc := department.NewService(repo, nil)
		_, err := svc.Delete(ctx, 4)

		assert.Error(t, err)
	})
}
