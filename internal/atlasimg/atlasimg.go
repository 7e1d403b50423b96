// Package atlasimg produces the RGBA image behind a block texture atlas,
// either decoded from a file or drawn as a flat-colour placeholder.
package atlasimg

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"
	"strconv"

	"github.com/deltasampler/block-world/internal/meshing"
	"github.com/deltasampler/block-world/internal/world"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Load decodes the image at path and fits it to the atlas size.
func Load(path string, atlas meshing.Atlas) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open atlas image: %w", err)
	}
	defer file.Close()

	img, err := Decode(file, atlas)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode reads an image and returns it as a square atlas-sized RGBA. Images of
// a different size are resampled with nearest-neighbour so texels stay crisp.
func Decode(r io.Reader, atlas meshing.Atlas) (*image.RGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode atlas image: %w", err)
	}

	size := atlas.Size()
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if src.Bounds().Dx() == size && src.Bounds().Dy() == size {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	return dst, nil
}

var blockColors = map[world.Block]color.RGBA{
	world.BlockBedrock: {0x40, 0x40, 0x44, 0xff},
	world.BlockPlanks:  {0xb0, 0x8a, 0x52, 0xff},
	world.BlockStone:   {0x80, 0x80, 0x80, 0xff},
	world.BlockGravel:  {0x8c, 0x82, 0x7c, 0xff},
	world.BlockSand:    {0xdb, 0xcf, 0x8e, 0xff},
	world.BlockShore:   {0x6e, 0x5a, 0x3c, 0xff},
	world.BlockGrass:   {0x5d, 0x9c, 0x3a, 0xff},
	world.BlockDirt:    {0x86, 0x60, 0x43, 0xff},
	world.BlockLog:     {0x66, 0x50, 0x30, 0xff},
	world.BlockLeaves:  {0x3a, 0x7a, 0x2a, 0xff},
	world.BlockWater:   {0x30, 0x5c, 0xc8, 0xff},
}

// CellColor returns the placeholder fill of a zero-based atlas cell. Cells
// without a known block get a colour derived from the index.
func CellColor(cell int) color.RGBA {
	if c, ok := blockColors[world.Block(cell+1)]; ok {
		return c
	}
	h := uint32(cell+1) * 2654435761
	return color.RGBA{uint8(h >> 24), uint8(h >> 16), uint8(h >> 8), 0xff}
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
}

// Placeholder draws every atlas cell as a flat colour with a one texel darker
// border and, when the cell is wide enough, the block id it stands for.
func Placeholder(atlas meshing.Atlas) *image.RGBA {
	size, cell := atlas.Size(), atlas.CellSize()
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	face := basicfont.Face7x13
	for i := 0; i < atlas.Cells(); i++ {
		col, row := i%atlas.Columns(), i/atlas.Columns()
		r := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
		fill := CellColor(i)

		draw.Draw(img, r, image.NewUniform(darken(fill)), image.Point{}, draw.Src)
		draw.Draw(img, r.Inset(1), image.NewUniform(fill), image.Point{}, draw.Src)

		label := strconv.Itoa(i + 1)
		if len(label)*face.Advance > cell-4 || face.Height > cell-4 {
			continue
		}
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.White),
			Face: face,
			Dot:  fixed.P(r.Min.X+2, r.Min.Y+2+face.Ascent),
		}
		d.DrawString(label)
	}
	return img
}
