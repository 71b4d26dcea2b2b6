package position_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrms/internal/position"
	positionerrors "hrms/internal/position/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakePositionService struct {
	CreateFn  func(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetAllFn  func(ctx context.Context) ([]position.PositionResponse, error)
	GetByIDFn func(ctx context.Context, id uint) (position.PositionResponse, error)
	UpdateFn  func(ctx context.Context, id uint, req position.UpdatePositionRequest) (int64, error)
	DeleteFn  func(ctx context.Context, id uint) (int64, error)
}

func (f *fakePositionService) Create(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakePositionService) GetAll(ctx context.Context) ([]position.PositionResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakePositionService) GetByID(ctx context.Context, id uint) (position.PositionResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakePositionService) Update(ctx context.Context, id uint, req position.UpdatePositionRequest) (int64, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakePositionService) Delete(ctx context.Context, id uint) (int64, error) {
	return f.DeleteFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPositionHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakePositionService{
			CreateFn: func(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
				return position.PositionResponse{ID: 1, Name: req.Name}, nil
			},
		}

		h := position.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Backend Engineer","department_id":2}`
		c.Request = httptest.NewRequest(http.MethodPost, "/positions", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		h := position.NewHandler(&fakePositionService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/positions", strings.NewReader(`{"department_id":2}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown department maps to 400", func(t *testing.T) {
		svc := &fakePositionService{
			CreateFn: func(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
				return position.PositionResponse{}, positionerrors.ErrUnknownDepartment
			},
		}

		h := position.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Backend Engineer","department_id":999}`
		c.Request = httptest.NewRequest(http.MethodPost, "/positions", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPositionHandler_GetAll(t *testing.T) {
	t.Run("service error maps to 500", func(t *testing.T) {
		svc := &fakePositionService{
			GetAllFn: func(ctx context.Context) ([]position.PositionResponse, error) {
				return nil, errors.New("db down")
			},
		}

		h := position.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/positions", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPositionHandler_GetById(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		h := position.NewHandler(&fakePositionService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/positions/abc", nil)
		c.Params = []gin.Param{{Key: "id", Value: "abc"}}

		h.GetById(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakePositionService{
			GetByIDFn: func(ctx context.Context, id uint) (position.PositionResponse, error) {
				return position.PositionResponse{}, positionerrors.ErrPositionNotFound
			},
		}

		h := position.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/positions/42", nil)
		c.Params = []gin.Param{{Key: "id", Value: "42"}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPositionHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakePositionService{
			UpdateFn: func(ctx context.Context, id uint, req position.UpdatePositionRequest) (int64, error) {
				return 1, nil
			},
		}

		h := position.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Staff Engineer"}`
		c.Request = httptest.NewRequest(http.MethodPut, "/positions/3", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: "3"}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPositionHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakePositionService{
			DeleteFn: func(ctx context.Context, id uint) (int64, error) {
				return 1, nil
			},
		}

		h := position.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/positions/3", nil)
		c.Params = []gin.Param{{Key: "id", Value: "3"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
