// Loader reads the minute-level readings CSV into an in-memory table.
// It validates the configured column schema against the header before
// reading any rows, so a misconfigured file fails fast.
package loader

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/boracolakoglu/energy-dashboard/pkg/config"
	"github.com/boracolakoglu/energy-dashboard/pkg/types"
)

// LoadCSV reads path into a Table using the configured column roles.
// Empty timestamp cells become zero timestamps and empty numeric cells
// become NaN; both are left for the cleaner to resolve.
func LoadCSV(path string, cols config.ColumnSchemaConfig) (*types.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	tsIdx, ok := index[cols.Timestamp]
	if !ok {
		return nil, &types.MissingColumnError{Column: cols.Timestamp}
	}

	// Energy columns are recognized by the configured marker in their
	// header name, e.g. "Fridge [kW]".
	excluded := make(map[string]bool, len(cols.ExcludeFromAppliances))
	for _, name := range cols.ExcludeFromAppliances {
		excluded[name] = true
	}
	var energyColumns, applianceColumns []string
	for _, name := range header {
		name = strings.TrimSpace(name)
		if !strings.Contains(name, cols.EnergyMarker) {
			continue
		}
		energyColumns = append(energyColumns, name)
		if !excluded[name] && name != cols.Solar {
			applianceColumns = append(applianceColumns, name)
		}
	}
	if len(energyColumns) == 0 {
		return nil, &LoadError{Path: path, Err: ErrNoEnergyColumns}
	}
	if _, ok := index[cols.Solar]; !ok {
		return nil, &types.MissingColumnError{Column: cols.Solar}
	}
	for _, name := range cols.Weather {
		if _, ok := index[name]; !ok {
			return nil, &types.MissingColumnError{Column: name}
		}
	}

	// Only the columns the pipeline uses are kept per row.
	numericColumns := make([]string, 0, len(applianceColumns)+1+len(cols.Weather))
	numericColumns = append(numericColumns, applianceColumns...)
	numericColumns = append(numericColumns, cols.Solar)
	numericColumns = append(numericColumns, cols.Weather...)

	table := &types.Table{
		Schema: types.Schema{
			TimestampColumn:  cols.Timestamp,
			SolarColumn:      cols.Solar,
			ApplianceColumns: applianceColumns,
			WeatherColumns:   append([]string(nil), cols.Weather...),
		},
	}

	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}

		reading := types.Reading{Values: make(map[string]float64, len(numericColumns))}

		tsValue := strings.TrimSpace(record[tsIdx])
		if tsValue != "" {
			ts, err := time.Parse(cols.TimestampLayout, tsValue)
			if err != nil {
				return nil, &ParseError{Line: line, Column: cols.Timestamp, Value: tsValue, Err: err}
			}
			reading.Timestamp = ts.UTC()
		}

		for _, name := range numericColumns {
			cell := strings.TrimSpace(record[index[name]])
			if cell == "" {
				reading.Values[name] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Column: name, Value: cell, Err: err}
			}
			reading.Values[name] = v
		}

		table.Readings = append(table.Readings, reading)
	}

	return table, nil
}
