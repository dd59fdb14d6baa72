package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"osm-road-names/pkg/geometry"
)

// Line is one polyline ready to draw.
type Line struct {
	Geometry orb.LineString
	Color    color.RGBA
}

// LegendEntry is one swatch+label row of the optional legend.
type LegendEntry struct {
	Label string
	Color color.RGBA
}

type Options struct {
	Width      int
	LineWidth  int
	Background color.RGBA
	Legend     []LegendEntry
}

func DefaultOptions() Options {
	return Options{
		Width:      1600,
		LineWidth:  2,
		Background: color.RGBA{255, 255, 255, 255},
	}
}

// Plot draws the lines projected through the box and writes a PNG to
// filename, overwriting any existing file. A ".png" extension is appended
// when the filename has none.
func Plot(lines []Line, bbox geometry.BBox, filename string, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = DefaultOptions().Width
	}
	lineWidth := opts.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}
	height := int(math.Round(float64(width) * bbox.AspectRatio()))
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: opts.Background}, image.Point{}, draw.Src)

	project := func(pt orb.Point) (int, int) {
		x := (pt[0] - bbox.LonMin) / bbox.LonSpan() * float64(width-1)
		y := float64(height-1) - (pt[1]-bbox.LatMin)/bbox.LatSpan()*float64(height-1)
		return int(math.Round(x)), int(math.Round(y))
	}

	for _, line := range lines {
		for i := 0; i < len(line.Geometry)-1; i++ {
			x0, y0 := project(line.Geometry[i])
			x1, y1 := project(line.Geometry[i+1])
			drawLine(img, x0, y0, x1, y1, line.Color, lineWidth)
		}
	}

	if len(opts.Legend) > 0 {
		drawLegend(img, opts.Legend)
	}

	return writePNG(img, filename)
}

// drawLine interpolates between the endpoints and stamps a small square of
// side lw at each step.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA, lw int) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(float64(dx)), math.Abs(float64(dy))))
	if steps == 0 {
		steps = 1
	}
	half := lw / 2
	for s := 0; s <= steps; s++ {
		xi := x0 + int(math.Round(float64(dx)*float64(s)/float64(steps)))
		yi := y0 + int(math.Round(float64(dy)*float64(s)/float64(steps)))
		for ox := -half; ox <= half; ox++ {
			for oy := -half; oy <= half; oy++ {
				img.Set(xi+ox, yi+oy, c)
			}
		}
	}
}

func drawLegend(img *image.RGBA, entries []LegendEntry) {
	const (
		marginX  = 10
		marginY  = 10
		swatch   = 12
		rowStep  = 18
		labelGap = 6
	)
	for i, entry := range entries {
		y0 := marginY + i*rowStep
		rect := image.Rect(marginX, y0, marginX+swatch, y0+swatch)
		draw.Draw(img, rect, &image.Uniform{C: entry.Color}, image.Point{}, draw.Src)

		face := basicfont.Face7x13
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.RGBA{0, 0, 0, 255}),
			Face: face,
			Dot:  fixed.P(marginX+swatch+labelGap, y0+swatch-1),
		}
		d.DrawString(entry.Label)
	}
}

func writePNG(img image.Image, filename string) error {
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
