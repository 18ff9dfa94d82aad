package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// CellCount multiplies dimension sizes and reports overflow of int.
func CellCount(sizes []uint32) (int, error) {
	n := uint64(1)
	for _, s := range sizes {
		if s != 0 && n > math.MaxUint64/uint64(s) {
			return 0, fmt.Errorf("integer overflow: cell count exceeds uint64")
		}
		n *= uint64(s)
	}
	return Uint64ToInt(n)
}
