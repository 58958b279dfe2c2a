package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotExist is returned by ReadFile when the file does not exist.
var ErrNotExist = errors.New("file does not exist")

// ReadLines splits r into lines on '\n'. Trailing '\r' and '\n' bytes are
// stripped from every line, so CRLF files load the same as LF files. An
// empty input yields no lines.
func ReadLines(r io.Reader) ([][]byte, error) {
	br := bufio.NewReader(r)
	var lines [][]byte
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, trimEOL(line))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ReadFile reads the lines of the file at path.
func ReadFile(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", path, ErrNotExist)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// WriteFile writes data to path, creating it with mode 0644 if needed and
// truncating it to the new length. It returns the number of bytes written.
func WriteFile(path string, data []byte) (int, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return 0, err
	}
	if err := f.Truncate(int64(len(data))); err != nil {
		f.Close()
		return 0, err
	}
	n, err := f.Write(data)
	if err != nil {
		f.Close()
		return n, err
	}
	if n != len(data) {
		f.Close()
		return n, io.ErrShortWrite
	}
	return n, f.Close()
}

// Save writes the serialized document to path and marks it clean on
// success. On failure the dirty counter is left untouched.
func (d *Document) Save(path string) (int, error) {
	n, err := WriteFile(path, d.Serialize())
	if err != nil {
		return n, err
	}
	d.MarkClean()
	return n, nil
}

func trimEOL(line []byte) []byte {
	n := len(line)
	for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
		n--
	}
	return line[:n]
}
