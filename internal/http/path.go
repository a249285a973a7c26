package http

import (
	"strconv"
	"strings"
)

// pathCursor tracks the unconsumed remainder of a request path. It is an
// immutable value: shift returns an advanced copy instead of mutating the
// receiver, so nested dispatch never shares routing state.
type pathCursor struct {
	rest string
}

func newPathCursor(path string) pathCursor {
	return pathCursor{rest: strings.TrimPrefix(path, "/")}
}

// shift returns the first unconsumed segment and a cursor positioned after
// it. An exhausted cursor yields the empty segment.
func (c pathCursor) shift() (string, pathCursor) {
	if c.rest == "" {
		return "", c
	}
	if i := strings.IndexByte(c.rest, '/'); i >= 0 {
		return c.rest[:i], pathCursor{rest: c.rest[i+1:]}
	}
	return c.rest, pathCursor{}
}

// shiftID consumes the next segment as a numeric identifier.
func (c pathCursor) shiftID() (int64, pathCursor, error) {
	segment, rest := c.shift()
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		return 0, rest, err
	}
	return id, rest, nil
}
