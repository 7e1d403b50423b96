package meshing

import "fmt"

// Stock atlas geometry: a 1024px square split into 32px cells with a 1px inset.
const (
	DefaultAtlasSize    = 1024
	DefaultAtlasCell    = 32
	DefaultAtlasPadding = 1
)

// Atlas describes a square texture atlas of square cells. Size, cell size and
// padding only make sense together, so they are set through NewAtlas as a unit.
type Atlas struct {
	size    int
	cell    int
	padding int
}

// UVRect is a cell's texture rectangle in normalised [0,1] coordinates.
type UVRect struct {
	U0, V0, U1, V1 float32
}

// NewAtlas validates and returns an atlas description.
func NewAtlas(size, cellSize, paddingTexels int) (Atlas, error) {
	switch {
	case size <= 0 || cellSize <= 0:
		return Atlas{}, fmt.Errorf("atlas: size %d and cell size %d must be positive", size, cellSize)
	case size%cellSize != 0:
		return Atlas{}, fmt.Errorf("atlas: size %d is not a multiple of cell size %d", size, cellSize)
	case paddingTexels < 0 || 2*paddingTexels >= cellSize:
		return Atlas{}, fmt.Errorf("atlas: padding %d does not fit in a %d texel cell", paddingTexels, cellSize)
	}
	return Atlas{size: size, cell: cellSize, padding: paddingTexels}, nil
}

// DefaultAtlas returns the 1024/32/1 atlas.
func DefaultAtlas() Atlas {
	return Atlas{size: DefaultAtlasSize, cell: DefaultAtlasCell, padding: DefaultAtlasPadding}
}

func (a Atlas) Size() int     { return a.size }
func (a Atlas) CellSize() int { return a.cell }
func (a Atlas) Padding() int  { return a.padding }

// Columns is the number of cells per atlas row.
func (a Atlas) Columns() int {
	return a.size / a.cell
}

// Cells is the number of cells in the atlas.
func (a Atlas) Cells() int {
	c := a.Columns()
	return c * c
}

// UV returns the inset texture rectangle of the zero-based cell. Cells are laid
// out row-major starting at the top-left of the image.
func (a Atlas) UV(cell int) UVRect {
	cols := a.Columns()
	col := cell % cols
	row := cell / cols

	size := float32(a.size)
	span := float32(a.cell) / size
	pad := float32(a.padding) / size

	u0 := float32(col*a.cell)/size + pad
	v0 := float32(row*a.cell)/size + pad
	return UVRect{
		U0: u0,
		V0: v0,
		U1: u0 + span - 2*pad,
		V1: v0 + span - 2*pad,
	}
}
