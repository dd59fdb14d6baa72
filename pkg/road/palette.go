package road

import (
	"image/color"
	"math"
	"sort"
)

var unknownColor = color.RGBA{128, 128, 128, 255}

// basePalette covers the common case of a city plot. Categories beyond it
// get evenly spaced hues from paletteColor.
var basePalette = []color.RGBA{
	{230, 57, 70, 255},   // red
	{69, 123, 157, 255},  // steel blue
	{42, 157, 143, 255},  // teal
	{233, 196, 106, 255}, // sand
	{244, 162, 97, 255},  // orange
	{38, 70, 83, 255},    // dark slate
	{144, 190, 109, 255}, // green
	{157, 78, 221, 255},  // violet
	{239, 71, 111, 255},  // pink
	{17, 138, 178, 255},  // cyan
	{255, 209, 102, 255}, // yellow
	{6, 214, 160, 255},   // mint
}

// BuildPalette maps every category to a color. The input is deduplicated and
// sorted first, so a fixed category set always yields the same mapping
// regardless of observation order. SuffixUnknown always maps to gray.
func BuildPalette(categories []string) map[string]color.RGBA {
	uniq := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		uniq[c] = struct{}{}
	}
	sorted := make([]string, 0, len(uniq))
	for c := range uniq {
		sorted = append(sorted, c)
	}
	sort.Strings(sorted)

	palette := make(map[string]color.RGBA, len(sorted))
	next := 0
	overflow := 0
	for _, cat := range sorted {
		if cat == SuffixUnknown {
			palette[cat] = unknownColor
			continue
		}
		if next < len(basePalette) {
			palette[cat] = basePalette[next]
			next++
		} else {
			palette[cat] = paletteColor(overflow)
			overflow++
		}
	}
	return palette
}

// paletteColor generates the i-th overflow color by walking the hue circle
// with the golden angle, which keeps neighboring assignments far apart.
func paletteColor(i int) color.RGBA {
	hue := math.Mod(float64(i)*137.508, 360)
	return hsvToRGB(hue, 0.65, 0.85)
}

func hsvToRGB(h, s, v float64) color.RGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}
