package weld

import (
	"bufio"
	"io"
)

// lineIter yields physical lines with their original endings intact, so
// emitted text reproduces the source's newline formation exactly. The final
// line is yielded even when it has no trailing newline.
type lineIter struct {
	br   *bufio.Reader
	done bool
}

func newLineIter(r io.Reader) *lineIter {
	return &lineIter{br: bufio.NewReader(r)}
}

// next returns the next line including its terminator, or io.EOF when the
// input is exhausted.
func (l *lineIter) next() (string, error) {
	if l.done {
		return "", io.EOF
	}

	line, err := l.br.ReadString('\n')
	if err == io.EOF {
		l.done = true
		if line == "" {
			return "", io.EOF
		}
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}
