package components

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"charm.land/lipgloss/v2"
)

// ErrEmptyPicture is returned for zero-sized images or areas.
var ErrEmptyPicture = errors.New("empty picture")

// Picture is a decoded illustration that can be drawn at any size.
type Picture struct {
	img image.Image
}

// DecodePicture decodes a PNG or JPEG.
func DecodePicture(data []byte) (Picture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Picture{}, fmt.Errorf("decode image: %w", err)
	}
	return Picture{img: img}, nil
}

// Render draws the picture with half-block cells: each character shows
// two vertical pixels, the upper as foreground and the lower as
// background. The picture keeps its aspect ratio within width x height
// cells.
func (p Picture) Render(width, height int) (string, error) {
	if p.img == nil {
		return "", ErrEmptyPicture
	}
	return renderImage(p.img, width, height)
}

// RenderPicture decodes data and renders it in one step.
func RenderPicture(data []byte, width, height int) (string, error) {
	p, err := DecodePicture(data)
	if err != nil {
		return "", err
	}
	return p.Render(width, height)
}

func renderImage(img image.Image, width, height int) (string, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || width <= 0 || height <= 0 {
		return "", ErrEmptyPicture
	}

	// A cell is two pixels tall.
	cols := width
	rows := cols * b.Dy() / b.Dx() / 2
	if rows > height {
		rows = height
		cols = rows * 2 * b.Dx() / b.Dy()
	}
	cols, rows = max(cols, 1), max(rows, 1)

	sample := func(x, y int) color.Color {
		sx := b.Min.X + x*b.Dx()/cols
		sy := b.Min.Y + y*b.Dy()/(rows*2)
		return img.At(sx, sy)
	}

	var sb strings.Builder
	for y := range rows {
		for x := range cols {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(sample(x, y*2)).
				Background(sample(x, y*2+1)).
				Render("▀"))
		}
		if y < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
