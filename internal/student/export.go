package student

import (
	"strconv"

	"college-portal/internal/util"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Students"

var exportHeader = []string{
	"Student Num", "First Name", "Last Name", "Email", "Street", "City",
	"Province", "TA", "Status", "Course ID",
}

// BuildStudentWorkbook renders students as a single-sheet xlsx file.
// An empty slice yields a sheet holding only the header row.
func BuildStudentWorkbook(students []Student) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, exportSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})
	if err != nil {
		return nil, err
	}

	sw, err := f.NewStreamWriter(exportSheet)
	if err != nil {
		return nil, err
	}

	header := make([]interface{}, 0, len(exportHeader))
	for _, h := range exportHeader {
		header = append(header, excelize.Cell{Value: h, StyleID: headerStyle})
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	for i, s := range students {
		courseID := ""
		if s.CourseID != nil {
			courseID = strconv.Itoa(*s.CourseID)
		}

		ta := "No"
		if s.TA {
			ta = "Yes"
		}

		row := []interface{}{
			s.StudentNum,
			util.StringValue(s.FirstName),
			util.StringValue(s.LastName),
			util.StringValue(s.Email),
			util.StringValue(s.AddressStreet),
			util.StringValue(s.AddressCity),
			util.StringValue(s.AddressProvince),
			ta,
			util.StringValue(s.Status),
			courseID,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, err
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
