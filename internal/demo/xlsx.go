// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package demo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/xuri/excelize/v2"
)

// ErrNoEntries is returned when a sheet holds no usable rows.
var ErrNoEntries = errors.New("demo: no entries")

// Palette colours bars loaded without an explicit colour.
var Palette = []gg.RGBA{
	gg.Hex("#266489"),
	gg.Hex("#68B9C0"),
	gg.Hex("#90D585"),
	gg.Hex("#F3C151"),
	gg.Hex("#F37F64"),
	gg.Hex("#424856"),
	gg.Hex("#8F97A4"),
}

// LoadXLSX reads bar entries from a workbook. Each row holds a label in
// column A, a value in column B and optionally a hex colour in column C.
// Rows whose value does not parse, such as a header, are skipped. An empty
// sheet name selects the first sheet.
func LoadXLSX(path, sheet string) ([]Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("demo: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %s has no sheets", ErrNoEntries, path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("demo: read sheet %q: %w", sheet, err)
	}

	entries := parseRows(rows)
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: sheet %q", ErrNoEntries, sheet)
	}
	return entries, nil
}

func parseRows(rows [][]string) []Entry {
	var entries []Entry
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			continue
		}
		e := Entry{
			Label: strings.TrimSpace(row[0]),
			Value: v,
			Color: Palette[len(entries)%len(Palette)],
		}
		if len(row) > 2 && strings.HasPrefix(strings.TrimSpace(row[2]), "#") {
			e.Color = gg.Hex(strings.TrimSpace(row[2]))
		}
		entries = append(entries, e)
	}
	return entries
}
