// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/matexpr/matrix"
)

const (
	formatTSV   = "tsv"
	formatTable = "table"
)

type renderFunc func(w io.Writer, m *matrix.Dense[float64]) error

var renderers = map[string]renderFunc{
	formatTSV:   renderTSV,
	formatTable: renderTable,
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func rowStrings(m *matrix.Dense[float64], i int) []string {
	raw := m.Raw()
	cols := m.Cols()
	out := make([]string, cols)
	for j := 0; j < cols; j++ {
		out[j] = formatValue(raw[i*cols+j])
	}

	return out
}

// renderTSV writes one line per row, elements separated by a tab.
func renderTSV(w io.Writer, m *matrix.Dense[float64]) error {
	for i := 0; i < m.Rows(); i++ {
		if _, err := fmt.Fprintln(w, strings.Join(rowStrings(m, i), "\t")); err != nil {
			return err
		}
	}

	return nil
}

// renderTable draws the matrix with row and column indices.
func renderTable(w io.Writer, m *matrix.Dense[float64]) error {
	table := tablewriter.NewWriter(w)
	header := make([]string, m.Cols()+1)
	for j := 0; j < m.Cols(); j++ {
		header[j+1] = strconv.Itoa(j)
	}
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i := 0; i < m.Rows(); i++ {
		table.Append(append([]string{strconv.Itoa(i)}, rowStrings(m, i)...))
	}
	table.Render()

	return nil
}
