package lib

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/xoviat/klib/lib/kicad"
)

/*
	Part tables arrive as CSV or xlsx with a header row; every row
	becomes one component record with the full column map attached.
	The Symbol Name column is mandatory, everything else is free-form
	display data that the symbol property stack carries through.
*/

type MalformedRecordError struct {
	Line   int
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("record on line %d has malformed field %q: %s", e.Line, e.Field, e.Reason)
	}
	return fmt.Sprintf("record on line %d is missing required field %q", e.Line, e.Field)
}

func componentFromRow(header, row []string, line int) (kicad.Component, error) {
	fields := map[string]string{}
	for i, name := range header {
		if i >= len(row) {
			break
		}
		value := strings.TrimSpace(row[i])
		if value == "" {
			continue
		}
		fields[name] = value
	}

	name, ok := fields["Symbol Name"]
	if !ok {
		return kicad.Component{}, &MalformedRecordError{Line: line, Field: "Symbol Name"}
	}

	return kicad.Component{Name: name, Fields: fields}, nil
}

func componentsFromRows(rows [][]string) ([]kicad.Component, error) {
	if len(rows) < 1 {
		return nil, fmt.Errorf("part table has no header row")
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	components := make([]kicad.Component, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		component, err := componentFromRow(header, row, i+2)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}

	return components, nil
}

func ReadPartsCSV(src string) ([]kicad.Component, error) {
	fp, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	reader := csv.NewReader(fp)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return componentsFromRows(rows)
}

func ReadPartsXLSX(src string) ([]kicad.Component, error) {
	f, err := excelize.OpenFile(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	return componentsFromRows(rows)
}

/*
	ReadParts dispatches on the file extension: xlsx tables go through
	excelize, everything else is treated as CSV.
*/
func ReadParts(src string) ([]kicad.Component, error) {
	if strings.HasSuffix(src, ".xlsx") || strings.HasSuffix(src, ".xls") {
		return ReadPartsXLSX(src)
	}
	return ReadPartsCSV(src)
}
