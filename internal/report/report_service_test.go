package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrms/internal/report"
	reporterrors "hrms/internal/report/errors"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

type fakeReportRepo struct {
	NewHiresFn     func(ctx context.Context, r report.DateRange) ([]report.NewHireRow, error)
	ResignationsFn func(ctx context.Context, r report.DateRange) ([]report.ResignationReportRow, error)
	TransfersFn    func(ctx context.Context, r report.DateRange) ([]report.TransferReportRow, error)
}

func (f *fakeReportRepo) NewHires(ctx context.Context, r report.DateRange) ([]report.NewHireRow, error) {
	return f.NewHiresFn(ctx, r)
}
func (f *fakeReportRepo) Resignations(ctx context.Context, r report.DateRange) ([]report.ResignationReportRow, error) {
	return f.ResignationsFn(ctx, r)
}
func (f *fakeReportRepo) Transfers(ctx context.Context, r report.DateRange) ([]report.TransferReportRow, error) {
	return f.TransfersFn(ctx, r)
}

func strPtr(v string) *string { return &v }

func TestReportService_NewHires(t *testing.T) {
	ctx := context.Background()

	t.Run("bounds are parsed and passed through inclusive", func(t *testing.T) {
		repo := &fakeReportRepo{
			NewHiresFn: func(ctx context.Context, r report.DateRange) ([]report.NewHireRow, error) {
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
				assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), r.End)
				return []report.NewHireRow{
					{
						ID:             1,
						Code:           "EMP001",
						Name:           "Jane Doe",
						DepartmentName: strPtr("Engineering"),
						HireDate:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
						Status:         "active",
					},
				}, nil
			},
		}

		svc := report.NewService(repo)
		resp, err := svc.NewHires(ctx, "2024-01-01", "2024-12-31")

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "2024-03-15", resp[0].HireDate)
		assert.Equal(t, "Engineering", *resp[0].DepartmentName)
	})

	t.Run("missing bounds rejected", func(t *testing.T) {
		svc := report.NewService(&fakeReportRepo{})
		_, err := svc.NewHires(ctx, "", "2024-12-31")

		assert.True(t, errors.Is(err, reporterrors.ErrMissingDateRange))
	})

	t.Run("malformed bounds rejected", func(t *testing.T) {
		svc := report.NewService(&fakeReportRepo{})
		_, err := svc.NewHires(ctx, "2024-01-01", "31-12-2024")

		assert.True(t, errors.Is(err, reporterrors.ErrInvalidDateRange))
	})

	t.Run("db error surfaces", func(t *testing.T) {
		repo := &fakeReportRepo{
			NewHiresFn: func(ctx context.Context, r report.DateRange) ([]report.NewHireRow, error) {
				return nil, errors.New("db down")
			},
		}

		svc := report.NewService(repo)
		_, err := svc.NewHires(ctx, "2024-01-01", "2024-12-31")

		assert.Error(t, err)
	})
}

func TestReportService_Transfers(t *testing.T) {
	ctx := context.Background()

	t.Run("dangling names stay nil in the response", func(t *testing.T) {
		repo := &fakeReportRepo{
			TransfersFn: func(ctx context.Context, r report.DateRange) ([]report.TransferReportRow, error) {
				return []report.TransferReportRow{
					{
						ID:               10,
						EmployeeID:       1,
						EmployeeName:     "Jane Doe",
						EmployeeCode:     "EMP001",
						ToDepartmentName: strPtr("Engineering"),
						TransferDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		svc := report.NewService(repo)
		resp, err := svc.Transfers(ctx, "2024-01-01", "2024-12-31")

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Nil(t, resp[0].FromDepartmentName)
		assert.Equal(t, "Engineering", *resp[0].ToDepartmentName)
	})
}

func TestReportService_ExportNewHires(t *testing.T) {
	ctx := context.Background()

	t.Run("workbook carries headers and rows", func(t *testing.T) {
		repo := &fakeReportRepo{
			NewHiresFn: func(ctx context.Context, r report.DateRange) ([]report.NewHireRow, error) {
				return []report.NewHireRow{
					{
						ID:             1,
						Code:           "EMP001",
						Name:           "Jane Doe",
						DepartmentName: strPtr("Engineering"),
						HireDate:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
						Status:         "active",
					},
				}, nil
			},
		}

		svc := report.NewService(repo)
		buf, err := svc.ExportNewHires(ctx, "2024-01-01", "2024-12-31")

		assert.NoError(t, err)
		assert.NotNil(t, buf)

		f, err := excelize.OpenReader(buf)
		assert.NoError(t, err)
		defer f.Close()

		assert.Contains(t, f.GetSheetList(), "New Hires")

		header, err := f.GetCellValue("New Hires", "B1")
		assert.NoError(t, err)
		assert.Equal(t, "Employee Code", header)

		code, err := f.GetCellValue("New Hires", "B2")
		assert.NoError(t, err)
		assert.Equal(t, "EMP001", code)

		dept, err := f.GetCellValue("New Hires", "D2")
		assert.NoError(t, err)
		assert.Equal(t, "Engineering", dept)
	})

	t.Run("bad range never reaches the repository", func(t *testing.T) {
		svc := report.NewService(&fakeReportRepo{})
		_, err := svc.ExportNewHires(ctx, "", "")

		assert.True(t, errors.Is(err, reporterrors.ErrMissingDateRange))
	})
}

func TestReportService_ExportTransfers(t *testing.T) {
	ctx := context.Background()

	t.Run("empty result still yields a workbook with headers", func(t *testing.T) {
		repo := &fakeReportRepo{
			TransfersFn: func(ctx context.Context, r report.DateRange) ([]report.TransferReportRow, error) {
				return nil, nil
			},
		}

		svc := report.NewService(repo)
		buf, err := svc.ExportTransfers(ctx, "2024-01-01", "2024-12-31")

		assert.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		assert.NoError(t, err)
		defer f.Close()

		header, err := f.GetCellValue("Transfers", "A1")
		assert.NoError(t, err)
		assert.Equal(t, "ID", header)
	})
}
