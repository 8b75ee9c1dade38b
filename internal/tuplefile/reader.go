// Package tuplefile reads whitespace-separated signed integers and
// groups them into fixed-width tuples. A trailing partial group is
// reported and discarded rather than aborting the tuples already
// read.
package tuplefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// MalformedToken describes a token that could not be parsed as a
// signed 32-bit integer, or the trailing partial tuple left over at
// EOF.
type MalformedToken struct {
	// Index is the position (0-based) of the token in the overall
	// whitespace-separated token stream.
	Index int
	Token string
	Err   error
}

func (m MalformedToken) Error() string {
	return fmt.Sprintf("token %d (%q): %v", m.Index, m.Token, m.Err)
}

// Read scans r for whitespace-separated int32 tokens and groups every
// dims of them, in stream order, into a tuple, invoking onTuple once
// per complete group. Malformed tokens and a trailing partial tuple
// are reported via onWarn rather than aborting the scan; onWarn may be
// nil to discard them silently.
func Read(r io.Reader, dims int, onTuple func([]int32), onWarn func(MalformedToken)) error {
	if dims < 1 {
		return fmt.Errorf("tuplefile: dims must be ≥ 1, got %d", dims)
	}
	if onWarn == nil {
		onWarn = func(MalformedToken) {}
	}

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pending []int32
	tokenIndex := 0

	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			onWarn(MalformedToken{Index: tokenIndex, Token: tok, Err: err})
			tokenIndex++
			continue
		}
		pending = append(pending, int32(v))
		tokenIndex++

		if len(pending) == dims {
			onTuple(pending)
			pending = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("tuplefile: scanning input: %w", err)
	}

	if len(pending) > 0 {
		onWarn(MalformedToken{
			Index: tokenIndex - len(pending),
			Token: fmt.Sprintf("%d of %d integers", len(pending), dims),
			Err:   fmt.Errorf("trailing partial tuple discarded"),
		})
	}

	return nil
}
