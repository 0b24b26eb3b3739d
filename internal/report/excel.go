package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/timezone"
)

// Generator renders the superadmin xlsx exports. One workbook per report
// type, one sheet, bold header row.
type Generator struct {
	db *gorm.DB
}

func NewGenerator(db *gorm.DB) *Generator {
	return &Generator{db: db}
}

type appointmentRow struct {
	ID       uint
	Customer string
	Service  string
	Stylist  string
	Date     string
	Time     string
	Status   string
}

type userRow struct {
	Name      string
	Email     string
	Phone     string
	Role      string
	CreatedAt time.Time
}

type serviceRow struct {
	Name        string
	Price       float64
	Duration    int
	Status      string
	Description string
}

// Generate builds the workbook for the given report type and returns its
// bytes plus a download filename. Unknown types fail validation.
func (g *Generator) Generate(ctx context.Context, reportType string) ([]byte, string, error) {
	reportType = strings.ToLower(reportType)

	var (
		title   string
		headers []string
		rows    [][]interface{}
		err     error
	)

	switch reportType {
	case "appointments", "bookings":
		title = "Appointments Report"
		headers = []string{"#", "Customer", "Service", "Stylist", "Date", "Time", "Status"}
		rows, err = g.appointmentRows(ctx)
	case "users":
		title = "Users Report"
		headers = []string{"#", "Name", "Email", "Phone", "Role", "Joined"}
		rows, err = g.userRows(ctx)
	case "services":
		title = "Services Report"
		headers = []string{"#", "Name", "Price", "Duration (min)", "Status", "Description"}
		rows, err = g.serviceRows(ctx)
	default:
		return nil, "", httperr.Validation("invalid_report_type", "Invalid report type")
	}
	if err != nil {
		return nil, "", err
	}

	data, err := build(title, headers, rows)
	if err != nil {
		return nil, "", err
	}

	return data, fmt.Sprintf("%s_report.xlsx", reportType), nil
}

func (g *Generator) appointmentRows(ctx context.Context) ([][]interface{}, error) {
	var records []appointmentRow
	err := g.db.WithContext(ctx).
		Table("appointments a").
		Select("a.id, u.name AS customer, a.service, COALESCE(s.name, a.stylist) AS stylist, a.date, a.time, a.status").
		Joins("LEFT JOIN users u ON a.user_id = u.id").
		Joins("LEFT JOIN stylists s ON a.stylist_id = s.id").
		Order("a.date DESC, a.time DESC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(records))
	for i, r := range records {
		rows = append(rows, []interface{}{i + 1, r.Customer, r.Service, r.Stylist, r.Date, r.Time, r.Status})
	}
	return rows, nil
}

func (g *Generator) userRows(ctx context.Context) ([][]interface{}, error) {
	var records []userRow
	err := g.db.WithContext(ctx).
		Table("users").
		Select("name, email, phone, role, created_at").
		Order("created_at DESC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(records))
	for i, r := range records {
		rows = append(rows, []interface{}{
			i + 1, r.Name, r.Email, r.Phone, r.Role,
			r.CreatedAt.In(timezone.Location()).Format("2006-01-02 15:04"),
		})
	}
	return rows, nil
}

func (g *Generator) serviceRows(ctx context.Context) ([][]interface{}, error) {
	var records []serviceRow
	err := g.db.WithContext(ctx).
		Table("services").
		Select("name, price, duration, status, description").
		Order("id DESC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(records))
	for i, r := range records {
		rows = append(rows, []interface{}{
			i + 1, r.Name, fmt.Sprintf("%.2f", r.Price), r.Duration, r.Status, r.Description,
		})
	}
	return rows, nil
}

func build(title string, headers []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Report"
	f.SetSheetName("Sheet1", sheet)

	if err := f.SetCellValue(sheet, "A1", "Princess Angel Salon"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "A2", title); err != nil {
		return nil, err
	}
	generated := fmt.Sprintf("Generated: %s", timezone.Now().Format("2006-01-02 15:04:05"))
	if err := f.SetCellValue(sheet, "A3", generated); err != nil {
		return nil, err
	}

	headerRow := 5
	for i, col := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		start, _ := excelize.CoordinatesToCellName(1, headerRow)
		end, _ := excelize.CoordinatesToCellName(len(headers), headerRow)
		_ = f.SetCellStyle(sheet, start, end, style)
	}

	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, headerRow+1+i)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
