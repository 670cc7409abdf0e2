package eval

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// InputSource is where read gets its integers from. Each call consumes
// one value; an error means the source could not produce an integer
// (bad input or exhausted), which the evaluator reports as
// INVALID_INPUT.
type InputSource interface {
	NextInteger() (int64, error)
}

var errNoInput = errors.New("no input available")

// ScannerSource reads one integer per line from r.
type ScannerSource struct {
	s *bufio.Scanner
}

func NewScannerSource(r io.Reader) *ScannerSource {
	return &ScannerSource{s: bufio.NewScanner(r)}
}

func (src *ScannerSource) NextInteger() (int64, error) {
	if !src.s.Scan() {
		if err := src.s.Err(); err != nil {
			return 0, err
		}
		return 0, errNoInput
	}
	return strconv.ParseInt(strings.TrimSpace(src.s.Text()), 10, 64)
}
