package utils

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// OutputFormat selects the column layout of a cell value file
type OutputFormat uint8

const (
	// IndexFormat writes "Cell_Index,<Title>" then "<i>,<value>"
	IndexFormat OutputFormat = iota
	// PositionFormat writes "x,<Title>" then "<x>,<value>"
	PositionFormat
)

func (of OutputFormat) String() string {
	switch of {
	case IndexFormat:
		return "index"
	case PositionFormat:
		return "position"
	}
	return "Unknown"
}

func NewOutputFormat(label string) (of OutputFormat, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "index", "cell_index":
		of = IndexFormat
	case "position", "x":
		of = PositionFormat
	default:
		err = fmt.Errorf("unknown output format %q, must be index or position", label)
	}
	return
}

// WriteCells writes one record per cell: a header row, then the cell index or position and the value
// with 10 decimal digits. X is only read for PositionFormat.
func WriteCells(w io.Writer, format OutputFormat, title string, X, U []float64) (err error) {
	var (
		cw     = csv.NewWriter(w)
		header = []string{"Cell_Index", title}
	)
	if format == PositionFormat {
		if len(X) != len(U) {
			panic(fmt.Sprintf("position count %d does not match value count %d", len(X), len(U)))
		}
		header[0] = "x"
	}
	if err = cw.Write(header); err != nil {
		return
	}
	rec := make([]string, 2)
	for i, val := range U {
		switch format {
		case PositionFormat:
			rec[0] = strconv.FormatFloat(X[i], 'f', 6, 64)
		default:
			rec[0] = strconv.Itoa(i)
		}
		rec[1] = strconv.FormatFloat(val, 'f', 10, 64)
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFluxes writes one line per interface: "<j> <flux>" with 15 significant digits in exponent form
func WriteFluxes(w io.Writer, F []float64) (err error) {
	bw := bufio.NewWriter(w)
	for j, f := range F {
		if _, err = fmt.Fprintf(bw, "%d %.15e\n", j, f); err != nil {
			return
		}
	}
	return bw.Flush()
}

// SaveCells creates fileName and writes the cell records into it
func SaveCells(fileName string, format OutputFormat, title string, X, U []float64) (err error) {
	return saveFile(fileName, func(w io.Writer) error {
		return WriteCells(w, format, title, X, U)
	})
}

// SaveFluxes creates fileName and writes the interface flux records into it
func SaveFluxes(fileName string, F []float64) (err error) {
	return saveFile(fileName, func(w io.Writer) error {
		return WriteFluxes(w, F)
	})
}

func saveFile(fileName string, write func(w io.Writer) error) (err error) {
	var (
		f *os.File
	)
	if f, err = os.Create(fileName); err != nil {
		return fmt.Errorf("unable to open output file: %w", err)
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("unable to write %s: %w", fileName, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("unable to close %s: %w", fileName, err)
	}
	return
}
