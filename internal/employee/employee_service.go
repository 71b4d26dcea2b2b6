package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "hrms/internal/employee/errors"
	"hrms/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

const optionsTTL = time.Hour

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("code", req.Code),
	)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidBirthDate
	}

	empl := &Employee{
		Code:         req.Code,
		Name:         req.Name,
		Gender:       req.Gender,
		BirthDate:    birthDate,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		DepartmentID: req.DepartmentID,
		PositionID:   req.PositionID,
		HireDate:     hireDate,
		Status:       StatusActive,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
		zap.String("code", empl.Code),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		employees, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOption, len(employees))
		for i, e := range employees {
			resp[i] = EmployeeOption{ID: e.ID, Code: e.Code, Name: e.Name}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, optionsTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.Uint("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (int64, error) {
	s.logger.Debug("update employee requested", zap.Uint("employee_id", id))

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return 0, employeeerrors.ErrInvalidHireDate
	}

	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return 0, employeeerrors.ErrInvalidBirthDate
	}

	affected, err := s.repo.Update(ctx, id, &Employee{
		Code:         req.Code,
		Name:         req.Name,
		Gender:       req.Gender,
		BirthDate:    birthDate,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		DepartmentID: req.DepartmentID,
		PositionID:   req.PositionID,
		HireDate:     hireDate,
	})
	if err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("update employee success",
		zap.Uint("employee_id", id),
		zap.Int64("affected", affected),
	)
	return affected, nil
}

func (s *service) Delete(ctx context.Context, id uint) (int64, error) {
	s.logger.Debug("delete employee requested", zap.Uint("employee_id", id))

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("delete employee success",
		zap.Uint("employee_id", id),
		zap.Int64("affected", affected),
	)
	return affected, nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func parseOptionalDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID,
		Code:         empl.Code,
		Name:         empl.Name,
		Gender:       empl.Gender,
		Phone:        empl.Phone,
		Email:        empl.Email,
		Address:      empl.Address,
		DepartmentID: empl.DepartmentID,
		PositionID:   empl.PositionID,
		HireDate:     empl.HireDate.Format("2006-01-02"),
		Status:       empl.Status,
		CreatedAt:    empl.CreatedAt.Format(time.RFC3339),
	}
	if empl.BirthDate != nil {
		resp.BirthDate = empl.BirthDate.Format("2006-01-02")
	}
	if empl.Department != nil {
		resp.DepartmentName = empl.Department.Name
	}
	if empl.Position != nil {
		resp.PositionName = empl.Position.Name
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
