package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matst80/diecast-finder/pkg/types"
)

var requiredColumns = []string{"id", "name", "year", "brand", "manufacturer", "category", "color"}

const listSeparator = "|"

var ErrMissingColumn = errors.New("missing column")

type row struct {
	line   int
	values []string
	cols   map[string]int
}

func (r row) get(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.values) {
		return ""
	}
	return strings.TrimSpace(r.values[i])
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, listSeparator)
	ret := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ret = append(ret, p)
		}
	}
	return ret
}

func (r row) model() (types.DiecastModel, error) {
	m := types.DiecastModel{
		Id:           r.get("id"),
		Name:         r.get("name"),
		Brand:        r.get("brand"),
		Manufacturer: r.get("manufacturer"),
		Category:     types.Category(r.get("category")),
		CarDriver:    r.get("carDriver"),
		Color:        splitList(r.get("color")),
		Hex:          splitList(r.get("hex")),
		Scale:        r.get("scale"),
		Thumbnail:    r.get("thumbnail"),
		ImageUrl:     r.get("imageUrl"),
	}
	year, err := strconv.Atoi(r.get("year"))
	if err != nil {
		return m, fmt.Errorf("line %d: invalid year %q", r.line, r.get("year"))
	}
	m.Year = year
	if v := r.get("carNumber"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return m, fmt.Errorf("line %d: invalid carNumber %q", r.line, v)
		}
		m.CarNumber = &n
	}
	return m, nil
}

// ReadModels parses a semicolon separated export with a header row. Columns
// are matched by name so their order is free.
func ReadModels(in io.Reader) ([]types.DiecastModel, error) {
	reader := csv.NewReader(in)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	models := make([]types.DiecastModel, 0)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, err
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		m, err := row{line: line, values: record, cols: cols}.model()
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	if err = types.ValidateCatalog(models); err != nil {
		return nil, err
	}
	return models, nil
}
