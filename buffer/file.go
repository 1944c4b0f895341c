package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// Load reads r into a new document, one row per line, with the line's
// trailing newline and carriage returns removed. The result is not dirty.
func Load(r io.Reader) (*Document, error) {
	d := NewDocument()
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			d.InsertRow(d.NumRows(), bytes.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading file: %w", err)
		}
	}
	d.ClearDirty()
	return d, nil
}

// ReadFile loads the named file.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Bytes serialises the document, each row followed by a newline.
func (d *Document) Bytes() []byte {
	n := 0
	for _, row := range d.rows {
		n += row.Size() + 1
	}
	buf := make([]byte, 0, n)
	for _, row := range d.rows {
		buf = append(buf, row.chars...)
		buf = append(buf, '\n')
	}
	return buf
}

// WriteFile writes the document to path, truncating the file to the new
// length first, and clears the dirty state on success.
func (d *Document) WriteFile(path string) (int, error) {
	buf := d.Bytes()
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, fmt.Errorf("could not write file: %w", err)
	}
	defer f.Close()

	if err := f.Truncate(int64(len(buf))); err != nil {
		return 0, fmt.Errorf("could not write file: %w", err)
	}
	n, err := f.Write(buf)
	if err != nil {
		return n, fmt.Errorf("could not write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("could not write file: %w", err)
	}
	d.ClearDirty()
	return n, nil
}
