package dump

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
)

// maxLineSize bounds a single dump line (16 MB).
const maxLineSize = 16 << 20

// ErrLineTooLong is yielded in place of a line longer than the maximum line
// size. The line is drained and reading continues with the next one.
var ErrLineTooLong = errors.New("dump line too long")

// Lines yields the lines of r in order, without line terminators. A line over
// 16 MB is yielded as ErrLineTooLong and the sequence goes on. Any other read
// error is yielded once and ends the sequence. The sequence is single-use;
// reopen the source to read it again.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return lines(r, maxLineSize)
}

func lines(r io.Reader, maxSize int) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReaderSize(r, 64*1024)
		var (
			buf  []byte
			size int
		)
		for {
			chunk, err := br.ReadSlice('\n')
			size += len(bytes.TrimRight(chunk, "\r\n"))
			if size <= maxSize {
				buf = append(buf, chunk...)
			} else {
				buf = buf[:0]
			}
			if errors.Is(err, bufio.ErrBufferFull) {
				continue
			}
			if err != nil && !errors.Is(err, io.EOF) {
				yield("", err)
				return
			}

			switch {
			case size > maxSize:
				if !yield("", fmt.Errorf("%w: %d bytes", ErrLineTooLong, size)) {
					return
				}
			case len(buf) > 0:
				line := bytes.TrimSuffix(buf, []byte("\n"))
				line = bytes.TrimSuffix(line, []byte("\r"))
				if !yield(string(line), nil) {
					return
				}
			}
			if err != nil {
				return
			}
			buf, size = buf[:0], 0
		}
	}
}

// Limit stops seq after n lines. Oversized lines count towards n. n <= 0
// leaves seq unbounded.
func Limit(seq iter.Seq2[string, error], n int) iter.Seq2[string, error] {
	if n <= 0 {
		return seq
	}
	return func(yield func(string, error) bool) {
		count := 0
		for line, err := range seq {
			if !yield(line, err) {
				return
			}
			if err != nil && !errors.Is(err, ErrLineTooLong) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}
