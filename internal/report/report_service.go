package report

import (
	"bytes"
	"context"
	"time"

	reporterrors "hrms/internal/report/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	NewHires(ctx context.Context, start, end string) ([]NewHireResponse, error)
	Resignations(ctx context.Context, start, end string) ([]ResignationReportResponse, error)
	Transfers(ctx context.Context, start, end string) ([]TransferReportResponse, error)

	ExportNewHires(ctx context.Context, start, end string) (*bytes.Buffer, error)
	ExportResignations(ctx context.Context, start, end string) (*bytes.Buffer, error)
	ExportTransfers(ctx context.Context, start, end string) (*bytes.Buffer, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, logger: l}
}

// parseRange rejects missing or malformed bounds up front; the original
// silently returned empty results, which hid caller mistakes.
func parseRange(start, end string) (DateRange, error) {
	if start == "" || end == "" {
		return DateRange{}, reporterrors.ErrMissingDateRange
	}
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return DateRange{}, reporterrors.ErrInvalidDateRange
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return DateRange{}, reporterrors.ErrInvalidDateRange
	}
	return DateRange{Start: startDate, End: endDate}, nil
}

func (s *service) NewHires(ctx context.Context, start, end string) ([]NewHireResponse, error) {
	rng, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.NewHires(ctx, rng)
	if err != nil {
		s.logger.Error("new hires report failed", zap.Error(err))
		return nil, err
	}

	res := make([]NewHireResponse, len(rows))
	for i, row := range rows {
		res[i] = NewHireResponse{
			ID:             row.ID,
			Code:           row.Code,
			Name:           row.Name,
			DepartmentName: row.DepartmentName,
			PositionName:   row.PositionName,
			HireDate:       row.HireDate.Format("2006-01-02"),
			Status:         row.Status,
		}
	}
	return res, nil
}

func (s *service) Resignations(ctx context.Context, start, end string) ([]ResignationReportResponse, error) {
	rng, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Resignations(ctx, rng)
	if err != nil {
		s.logger.Error("resignations report failed", zap.Error(err))
		return nil, err
	}

	res := make([]ResignationReportResponse, len(rows))
	for i, row := range rows {
		res[i] = ResignationReportResponse{
			ID:              row.ID,
			EmployeeID:      row.EmployeeID,
			EmployeeName:    row.EmployeeName,
			EmployeeCode:    row.EmployeeCode,
			DepartmentName:  row.DepartmentName,
			PositionName:    row.PositionName,
			ResignationDate: row.ResignationDate.Format("2006-01-02"),
			Reason:          row.Reason,
			ApprovedBy:      row.ApprovedBy,
		}
	}
	return res, nil
}

func (s *service) Transfers(ctx context.Context, start, end string) ([]TransferReportResponse, error) {
	rng, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Transfers(ctx, rng)
	if err != nil {
		s.logger.Error("transfers report failed", zap.Error(err))
		return nil, err
	}

	res := make([]TransferReportResponse, len(rows))
	for i, row := range rows {
		res[i] = TransferReportResponse{
			ID:                 row.ID,
			EmployeeID:         row.EmployeeID,
			EmployeeName:       row.EmployeeName,
			EmployeeCode:       row.EmployeeCode,
			FromDepartmentName: row.FromDepartmentName,
			FromPositionName:   row.FromPositionName,
			ToDepartmentName:   row.ToDepartmentName,
			ToPositionName:     row.ToPositionName,
			TransferDate:       row.TransferDate.Format("2006-01-02"),
			Reason:             row.Reason,
			ApprovedBy:         row.ApprovedBy,
		}
	}
	return res, nil
}
