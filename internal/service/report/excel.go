package report

import (
	"fmt"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/report"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/workday"
	"github.com/xuri/excelize/v2"
)

func renderCompanyMonthlyExcel(rep report.CompanyMonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Relatorio"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Relatorio Mensal - %s", rep.Month))
	f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	headers := []string{"Matricula", "Nome", "Previsto", "Trabalhado", "Abonado", "Extra", "Atraso", "Saldo"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A3", "H3", headerStyle)

	row := 4
	for _, r := range rep.Rows {
		values := []interface{}{
			r.EnrollmentNo,
			r.Name,
			workday.FormatMinutes(r.ExpectedMinutes),
			workday.FormatMinutes(r.WorkedMinutes),
			workday.FormatMinutes(r.AbonoMinutes),
			workday.FormatMinutes(r.ExtraMinutes),
			workday.FormatMinutes(r.DelayMinutes),
			workday.FormatMinutes(r.BalanceMinutes),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	totals := []interface{}{
		"",
		"Total",
		workday.FormatMinutes(rep.TotalExpectedMinutes),
		workday.FormatMinutes(rep.TotalWorkedMinutes),
		workday.FormatMinutes(rep.TotalAbonoMinutes),
		workday.FormatMinutes(rep.TotalExtraMinutes),
		workday.FormatMinutes(rep.TotalDelayMinutes),
		workday.FormatMinutes(rep.TotalBalanceMinutes),
	}
	for i, v := range totals {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
	startCell, _ := excelize.CoordinatesToCellName(1, row)
	endCell, _ := excelize.CoordinatesToCellName(len(totals), row)
	f.SetCellStyle(sheet, startCell, endCell, headerStyle)

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 32)
	f.SetColWidth(sheet, "C", "H", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render report workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func renderTimecardExcel(tc workday.TimecardResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Cartao de Ponto"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Cartao de Ponto - %s", tc.Month))
	f.SetCellValue(sheet, "A2", fmt.Sprintf("%s - %s", tc.Employee.EnrollmentNo, tc.Employee.Name))
	f.SetCellStyle(sheet, "A1", "A2", headerStyle)

	headers := []string{"Data", "Entrada 1", "Saida 1", "Entrada 2", "Saida 2", "Total", "Previsto", "Saldo", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A4", "I4", headerStyle)

	clock := func(v *string) string {
		if v == nil {
			return ""
		}
		return *v
	}

	row := 5
	for _, wd := range tc.Workdays {
		values := []interface{}{
			wd.Date,
			clock(wd.Entrada1),
			clock(wd.Saida1),
			clock(wd.Entrada2),
			clock(wd.Saida2),
			wd.TotalHours,
			workday.FormatMinutes(wd.ExpectedMinutes),
			workday.FormatMinutes(wd.BalanceMinutes),
			wd.Status,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Totais")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), headerStyle)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Trabalhado")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), tc.Totals.WorkedHours)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Previsto")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), tc.Totals.ExpectedHours)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Saldo")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), tc.Totals.BalanceHours)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Abonos")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), workday.FormatMinutes(tc.Abonos.Minutes))

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "I", 11)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render timecard workbook: %w", err)
	}
	return buf.Bytes(), nil
}
