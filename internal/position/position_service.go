package position

import (
	"context"
	"time"

	"hrms/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context) ([]PositionResponse, error)
	GetByID(ctx context.Context, id uint) (PositionResponse, error)
	Update(ctx context.Context, id uint, req UpdatePositionRequest) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("position.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create position requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	pos := &Position{
		Name:         req.Name,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
	}

	if err := s.repo.Create(ctx, pos); err != nil {
		s.logger.Error("create position persist failed", zap.String("request_id", rid), zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create position success",
		zap.String("request_id", rid),
		zap.Uint("position_id", pos.ID),
	)
	return mapToResponse(*pos), nil
}

func (s *service) GetAll(ctx context.Context) ([]PositionResponse, error) {
	positions, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all positions failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(positions), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (PositionResponse, error) {
	pos, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get position by id failed", zap.Uint("position_id", id), zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*pos), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdatePositionRequest) (int64, error) {
	s.logger.Debug("update position requested", zap.Uint("position_id", id))

	affected, err := s.repo.Update(ctx, id, &Position{
		Name:         req.Name,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		s.logger.Error("update position persist failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	s.logger.Info("update position success",
		zap.Uint("position_id", id),
		zap.Int64("affected", affected),
	)
	return affected, nil
}

func (s *service) Delete(ctx context.Context, id uint) (int64, error) {
	s.logger.Debug("delete position requested", zap.Uint("position_id", id))

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete position failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	s.logger.Info("delete position success",
		zap.Uint("position_id", id),
		zap.Int64("affected", affected),
	)
	return affected, nil
}

func mapToResponse(pos Position) PositionResponse {
	resp := PositionResponse{
		ID:           pos.ID,
		Name:         pos.Name,
		Description:  pos.Description,
		DepartmentID: pos.DepartmentID,
		CreatedAt:    pos.CreatedAt.Format(time.RFC3339),
	}
	if pos.Department != nil {
		resp.DepartmentName = pos.Department.Name
	}
	return resp
}

func mapToListResponse(positions []Position) []PositionResponse {
	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = mapToResponse(p)
	}
	return res
}
