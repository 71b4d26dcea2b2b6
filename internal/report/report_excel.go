package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var (
	newHireHeaders = []string{"ID", "Employee Code", "Name", "Department", "Position", "Hire Date", "Status"}

	resignationHeaders = []string{"ID", "Employee Code", "Name", "Department", "Position", "Resignation Date", "Reason", "Approved By"}

	transferHeaders = []string{"ID", "Employee Code", "Name", "From Department", "From Position", "To Department", "To Position", "Transfer Date", "Reason", "Approved By"}
)

func (s *service) ExportNewHires(ctx context.Context, start, end string) (*bytes.Buffer, error) {
	rows, err := s.NewHires(ctx, start, end)
	if err != nil {
		return nil, err
	}

	data := make([][]interface{}, len(rows))
	for i, r := range rows {
		data[i] = []interface{}{
			r.ID, r.Code, r.Name,
			derefName(r.DepartmentName), derefName(r.PositionName),
			r.HireDate, r.Status,
		}
	}
	return s.writeWorkbook("New Hires", newHireHeaders, data)
}

func (s *service) ExportResignations(ctx context.Context, start, end string) (*bytes.Buffer, error) {
	rows, err := s.Resignations(ctx, start, end)
	if err != nil {
		return nil, err
	}

	data := make([][]interface{}, len(rows))
	for i, r := range rows {
		data[i] = []interface{}{
			r.ID, r.EmployeeCode, r.EmployeeName,
			derefName(r.DepartmentName), derefName(r.PositionName),
			r.ResignationDate, r.Reason, r.ApprovedBy,
		}
	}
	return s.writeWorkbook("Resignations", resignationHeaders, data)
}

func (s *service) ExportTransfers(ctx context.Context, start, end string) (*bytes.Buffer, error) {
	rows, err := s.Transfers(ctx, start, end)
	if err != nil {
		return nil, err
	}

	data := make([][]interface{}, len(rows))
	for i, r := range rows {
		data[i] = []interface{}{
			r.ID, r.EmployeeCode, r.EmployeeName,
			derefName(r.FromDepartmentName), derefName(r.FromPositionName),
			derefName(r.ToDepartmentName), derefName(r.ToPositionName),
			r.TransferDate, r.Reason, r.ApprovedBy,
		}
	}
	return s.writeWorkbook("Transfers", transferHeaders, data)
}

func (s *service) writeWorkbook(sheetName string, headers []string, data [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Error("failed to close workbook", zap.Error(err))
		}
	}()

	sheet := "Sheet1"
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, row := range data {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("data cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write cell: %w", err)
			}
		}
	}

	f.SetSheetName(sheet, sheetName)
	return f.WriteToBuffer()
}

func derefName(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
