// Package juxtapose renders side by side comparison sheets from a
// source image and its processed counterpart.
package juxtapose

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/rastermill/pkg/raster"
)

// Options controls the comparison sheet layout.
type Options struct {
	// PanelWidth is the width each image is scaled to.
	PanelWidth int

	// Padding is the gap around and between panels, in pixels.
	Padding int

	// LabelHeight reserves space under each panel for its caption.
	LabelHeight int

	// Captions under the left and right panels.
	LeftLabel  string
	RightLabel string

	// Background fill for the sheet.
	Background color.Color
}

// DefaultOptions returns the standard sheet layout.
func DefaultOptions() Options {
	return Options{
		PanelWidth:  256,
		Padding:     16,
		LabelHeight: 24,
		LeftLabel:   "before",
		RightLabel:  "after",
		Background:  color.White,
	}
}

// Render lays out the two images side by side with captions and
// returns the sheet as an interleaved RGBA image.
func Render(left, right *raster.Image, opts Options) (*raster.Image, error) {
	if opts.PanelWidth < 1 {
		return nil, fmt.Errorf("panel width %d must be at least 1", opts.PanelWidth)
	}

	leftPanel := scalePanel(toRGBA(left), opts.PanelWidth)
	rightPanel := scalePanel(toRGBA(right), opts.PanelWidth)

	panelHeight := leftPanel.Bounds().Dy()
	if h := rightPanel.Bounds().Dy(); h > panelHeight {
		panelHeight = h
	}

	sheetW := opts.PanelWidth*2 + opts.Padding*3
	sheetH := panelHeight + opts.LabelHeight + opts.Padding*2

	dc := gg.NewContext(sheetW, sheetH)
	dc.SetColor(opts.Background)
	dc.Clear()

	leftX := opts.Padding
	rightX := opts.Padding*2 + opts.PanelWidth
	dc.DrawImage(leftPanel, leftX, opts.Padding)
	dc.DrawImage(rightPanel, rightX, opts.Padding)

	// Separator between the panels.
	sepX := float64(opts.Padding) + float64(opts.PanelWidth) + float64(opts.Padding)/2
	dc.SetColor(color.Gray{Y: 0xcc})
	dc.SetLineWidth(1)
	dc.DrawLine(sepX, float64(opts.Padding), sepX, float64(opts.Padding+panelHeight))
	dc.Stroke()

	labelY := float64(opts.Padding+panelHeight) + float64(opts.LabelHeight)/2
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(opts.LeftLabel, float64(leftX)+float64(opts.PanelWidth)/2, labelY, 0.5, 0.5)
	dc.DrawStringAnchored(opts.RightLabel, float64(rightX)+float64(opts.PanelWidth)/2, labelY, 0.5, 0.5)

	return fromImage(dc.Image())
}

// scalePanel resizes an image to the panel width, preserving aspect.
func scalePanel(img *image.RGBA, width int) *image.RGBA {
	bounds := img.Bounds()
	if bounds.Dx() == width {
		return img
	}
	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func toRGBA(img *raster.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	copy(out.Pix, img.Pix)
	return out
}

func fromImage(img image.Image) (*raster.Image, error) {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	pix := make([]byte, 4*w*h)
	copy(pix, rgba.Pix)
	return raster.NewImage(pix, w, h)
}
