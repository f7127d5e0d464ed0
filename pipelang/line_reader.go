package pipelang

import (
	"bufio"
	"io"
	"strings"
)

// LineReader supplies one line of external input per call.
// It returns io.EOF when no more input is available.
type LineReader interface {
	ReadLine() (string, error)
}

type bufLineReader struct {
	r *bufio.Reader
}

func NewLineReader(r io.Reader) LineReader {
	return &bufLineReader{
		r: bufio.NewReader(r),
	}
}

func (b *bufLineReader) ReadLine() (string, error) {
	line, err := b.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Lines is a scripted LineReader.
type Lines []string

var _ LineReader = new(Lines)

func (l *Lines) ReadLine() (string, error) {
	if len(*l) == 0 {
		return "", io.EOF
	}
	line := (*l)[0]
	*l = (*l)[1:]
	return line, nil
}
