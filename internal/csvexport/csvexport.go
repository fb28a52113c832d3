// Package csvexport writes generated records as CSV with the columns
// #,UUID,Name,Address,Phone. Rows are numbered across pages.
package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"pkg.jsn.cam/recordgen/pkg/recordgen"
)

// Header is the first CSV row.
var Header = []string{"#", "UUID", "Name", "Address", "Phone"}

// Writer streams records as CSV rows.
type Writer struct {
	cw            *csv.Writer
	rows          int
	headerWritten bool
}

// NewWriter creates a CSV writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cw: csv.NewWriter(w)}
}

// Write appends records, writing the header first if needed.
func (w *Writer) Write(records []recordgen.Record) error {
	if !w.headerWritten {
		if err := w.cw.Write(Header); err != nil {
			return err
		}
		w.headerWritten = true
	}

	for _, rec := range records {
		w.rows++
		row := []string{strconv.Itoa(w.rows), rec.Identifier, rec.Name, rec.Address, rec.Phone}
		if err := w.cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Rows returns the number of records written so far.
func (w *Writer) Rows() int {
	return w.rows
}

// Flush writes buffered rows; an empty export still gets its header.
func (w *Writer) Flush() error {
	if !w.headerWritten {
		if err := w.Write(nil); err != nil {
			return err
		}
	}
	w.cw.Flush()
	return w.cw.Error()
}

// WriteAll writes records as a complete CSV document.
func WriteAll(w io.Writer, records []recordgen.Record) error {
	cw := NewWriter(w)
	if err := cw.Write(records); err != nil {
		return err
	}
	return cw.Flush()
}
