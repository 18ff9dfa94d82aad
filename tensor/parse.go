package tensor

import (
	"errors"
	"strconv"
	"strings"
)

// ParseType parses the textual form produced by Type.String.
//
//	double
//	tensor(x[3])
//	tensor<float>(x[2],y[3])
func ParseType(s string) (*Type, error) {
	src := strings.TrimSpace(s)
	if src == "double" {
		return doubleType, nil
	}

	rest, ok := strings.CutPrefix(src, "tensor")
	if !ok {
		return nil, &TypeError{Spec: s, Reason: `expected "double" or "tensor"`}
	}

	cellType := Float64
	if strings.HasPrefix(rest, "<") {
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			return nil, &TypeError{Spec: s, Reason: "unterminated cell type"}
		}
		ct, err := ParseCellType(rest[1:end])
		if err != nil {
			return nil, &TypeError{Spec: s, Reason: err.Error(), cause: err}
		}
		cellType = ct
		rest = rest[end+1:]
	}

	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return nil, &TypeError{Spec: s, Reason: "expected dimension list in parentheses"}
	}
	body := strings.TrimSpace(rest[1 : len(rest)-1])

	var dims []Dimension
	if body != "" {
		for _, part := range strings.Split(body, ",") {
			d, err := parseDimension(strings.TrimSpace(part))
			if err != nil {
				return nil, &TypeError{Spec: s, Reason: err.Error(), cause: err}
			}
			dims = append(dims, d)
		}
	}

	t, err := NewType(cellType, dims...)
	if err != nil {
		var te *TypeError
		if errors.As(err, &te) {
			te.Spec = s
		}
		return nil, err
	}
	return t, nil
}

func parseDimension(s string) (Dimension, error) {
	open := strings.IndexByte(s, '[')
	if open <= 0 || !strings.HasSuffix(s, "]") {
		return Dimension{}, &TypeError{Reason: "malformed dimension " + strconv.Quote(s)}
	}
	size, err := strconv.ParseUint(s[open+1:len(s)-1], 10, 32)
	if err != nil {
		return Dimension{}, &TypeError{Reason: "bad size in dimension " + strconv.Quote(s), cause: err}
	}
	return Dimension{Name: strings.TrimSpace(s[:open]), Size: uint32(size)}, nil
}
