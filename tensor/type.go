package tensor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/tensoreval/internal/conv"
)

// Dimension is a named indexed axis of a dense tensor.
type Dimension struct {
	Name string
	Size uint32
}

func (d Dimension) String() string {
	return fmt.Sprintf("%s[%d]", d.Name, d.Size)
}

// Address is a per-dimension coordinate, ordered like the type's dimensions.
type Address []uint32

// Type is an immutable dense tensor type: ordered dimensions plus cell type.
// A type without dimensions is the double scalar type.
type Type struct {
	cellType CellType
	dims     []Dimension
	strides  []int
	size     int
}

var doubleType = &Type{cellType: Float64, size: 1}

// DoubleType returns the scalar type.
func DoubleType() *Type {
	return doubleType
}

// NewType validates dims and returns the type. Dimension order is significant.
// Scalars always have Float64 cells.
func NewType(cellType CellType, dims ...Dimension) (*Type, error) {
	if cellType != Float64 && cellType != Float32 {
		return nil, &TypeError{Reason: fmt.Sprintf("unknown cell type %d", cellType)}
	}
	if len(dims) == 0 {
		return doubleType, nil
	}

	sizes := make([]uint32, len(dims))
	seen := make(map[string]struct{}, len(dims))
	for i, d := range dims {
		if d.Name == "" {
			return nil, &TypeError{Reason: fmt.Sprintf("dimension %d has no name", i)}
		}
		if d.Size == 0 {
			return nil, &TypeError{Reason: fmt.Sprintf("dimension %q has size 0", d.Name)}
		}
		if _, dup := seen[d.Name]; dup {
			return nil, &TypeError{Reason: fmt.Sprintf("duplicate dimension %q", d.Name)}
		}
		seen[d.Name] = struct{}{}
		sizes[i] = d.Size
	}

	size, err := conv.CellCount(sizes)
	if err != nil {
		return nil, &TypeError{Reason: "too many cells", cause: err}
	}

	return &Type{
		cellType: cellType,
		dims:     slices.Clone(dims),
		strides:  computeStrides(dims),
		size:     size,
	}, nil
}

// MustType is like NewType but panics on error. Intended for tests and
// package-level declarations.
func MustType(cellType CellType, dims ...Dimension) *Type {
	t, err := NewType(cellType, dims...)
	if err != nil {
		panic(err)
	}
	return t
}

// computeStrides returns row-major strides; the last dimension varies fastest.
func computeStrides(dims []Dimension) []int {
	strides := make([]int, len(dims))
	stride := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= int(dims[i].Size)
	}
	return strides
}

// CellType returns the storage cell type.
func (t *Type) CellType() CellType { return t.cellType }

// Dimensions returns a copy of the dimensions.
func (t *Type) Dimensions() []Dimension { return slices.Clone(t.dims) }

// NumDimensions returns the number of dimensions.
func (t *Type) NumDimensions() int { return len(t.dims) }

// Dimension returns dimension i.
func (t *Type) Dimension(i int) Dimension { return t.dims[i] }

// DimensionNames returns the dimension names in order.
func (t *Type) DimensionNames() []string {
	names := make([]string, len(t.dims))
	for i, d := range t.dims {
		names[i] = d.Name
	}
	return names
}

// DimensionIndex returns the position of the named dimension, or -1.
func (t *Type) DimensionIndex(name string) int {
	for i, d := range t.dims {
		if d.Name == name {
			return i
		}
	}
	return -1
}

// Size returns the number of cells (1 for scalars).
func (t *Type) Size() int { return t.size }

// Stride returns the row-major stride of dimension i.
func (t *Type) Stride(i int) int { return t.strides[i] }

// IsScalar reports whether the type has no dimensions.
func (t *Type) IsScalar() bool { return len(t.dims) == 0 }

// IsDouble reports whether the type is the double scalar.
func (t *Type) IsDouble() bool { return t.IsScalar() && t.cellType == Float64 }

// IsDense reports whether the type is a dense tensor with at least one dimension.
func (t *Type) IsDense() bool { return len(t.dims) > 0 }

// Equal reports whether both types have the same cell type and dimensions.
func (t *Type) Equal(other *Type) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.cellType == other.cellType && t.SameShape(other)
}

// SameShape reports whether both types have the same dimensions, ignoring cell type.
func (t *Type) SameShape(other *Type) bool {
	return slices.Equal(t.dims, other.dims)
}

// WithCellType returns the type with a different cell type.
func (t *Type) WithCellType(ct CellType) (*Type, error) {
	if ct == t.cellType || t.IsScalar() {
		return t, nil
	}
	return NewType(ct, t.dims...)
}

// Reduce returns the type left after removing the named dimensions.
// With no names every dimension is removed. A result without dimensions
// is the double scalar.
func (t *Type) Reduce(names ...string) (*Type, error) {
	if len(names) == 0 {
		return doubleType, nil
	}
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		if t.DimensionIndex(name) < 0 {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownDimension, name, t)
		}
		drop[name] = struct{}{}
	}
	kept := make([]Dimension, 0, len(t.dims))
	for _, d := range t.dims {
		if _, ok := drop[d.Name]; !ok {
			kept = append(kept, d)
		}
	}
	return NewType(t.cellType, kept...)
}

// Join returns the result type of a cell-wise join with other. The result
// has every dimension of t in order followed by the dimensions only other
// has, in other's order. Shared dimensions must agree on size. The cell
// type is the promotion of both cell types.
func (t *Type) Join(other *Type) (*Type, error) {
	dims := slices.Clone(t.dims)
	for _, d := range other.dims {
		i := t.DimensionIndex(d.Name)
		if i < 0 {
			dims = append(dims, d)
			continue
		}
		if t.dims[i].Size != d.Size {
			return nil, fmt.Errorf("%w: %s vs %s", ErrDimensionMismatch, t.dims[i], d)
		}
	}
	return NewType(PromoteCellType(t.cellType, other.cellType), dims...)
}

// Encode returns the cell index of addr, or false if addr does not fit.
func (t *Type) Encode(addr Address) (int, bool) {
	if len(addr) != len(t.dims) {
		return 0, false
	}
	idx := 0
	for i, label := range addr {
		if label >= t.dims[i].Size {
			return 0, false
		}
		idx += int(label) * t.strides[i]
	}
	return idx, true
}

// Decode returns the address of cell index idx.
func (t *Type) Decode(idx int) Address {
	addr := make(Address, len(t.dims))
	for i, stride := range t.strides {
		addr[i] = uint32(idx / stride) //nolint:gosec // bounded by dimension size
		idx %= stride
	}
	return addr
}

// String renders the type, e.g. "tensor<float>(x[2],y[3])" or "double".
func (t *Type) String() string {
	if t.IsScalar() {
		return "double"
	}
	var sb strings.Builder
	sb.WriteString("tensor")
	if t.cellType != Float64 {
		sb.WriteByte('<')
		sb.WriteString(t.cellType.String())
		sb.WriteByte('>')
	}
	sb.WriteByte('(')
	for i, d := range t.dims {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(d.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
