package tensor

import (
	"fmt"
	"strings"
)

// CellType is the storage width of tensor cells.
type CellType uint8

const (
	// Float64 stores cells as 64-bit floats ("double").
	Float64 CellType = iota
	// Float32 stores cells as 32-bit floats ("float").
	Float32
)

// Size returns the byte size of one cell.
func (ct CellType) Size() int {
	switch ct {
	case Float64:
		return 8
	case Float32:
		return 4
	default:
		panic(fmt.Sprintf("unknown cell type %d", ct))
	}
}

// String returns the name used in type specs.
func (ct CellType) String() string {
	switch ct {
	case Float64:
		return "double"
	case Float32:
		return "float"
	default:
		return "unknown"
	}
}

// ParseCellType parses "double" or "float".
func ParseCellType(s string) (CellType, error) {
	switch strings.TrimSpace(s) {
	case "double":
		return Float64, nil
	case "float":
		return Float32, nil
	default:
		return 0, fmt.Errorf("unknown cell type %q", s)
	}
}

// PromoteCellType returns the more precise of two cell types.
func PromoteCellType(a, b CellType) CellType {
	if a == Float64 || b == Float64 {
		return Float64
	}
	return Float32
}
