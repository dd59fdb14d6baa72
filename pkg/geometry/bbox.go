package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

var ErrInvalidBounds = errors.New("invalid bounding box: min bound must be less than max bound")

// BBox is a geographic bounding box in WGS84 lon/lat degrees.
type BBox struct {
	LonMin float64
	LonMax float64
	LatMin float64
	LatMax float64
}

func NewBBox(lonMin, lonMax, latMin, latMax float64) (BBox, error) {
	if lonMin >= lonMax || latMin >= latMax {
		return BBox{}, fmt.Errorf("%w: lon [%v, %v], lat [%v, %v]", ErrInvalidBounds, lonMin, lonMax, latMin, latMax)
	}
	return BBox{LonMin: lonMin, LonMax: lonMax, LatMin: latMin, LatMax: latMax}, nil
}

// FromBound derives a BBox from an orb bound. Degenerate bounds are widened
// slightly so the box stays usable for projection.
func FromBound(b orb.Bound) BBox {
	const eps = 1e-4
	if b.Max[0]-b.Min[0] < eps {
		b.Max[0] += eps
	}
	if b.Max[1]-b.Min[1] < eps {
		b.Max[1] += eps
	}
	return BBox{LonMin: b.Min[0], LonMax: b.Max[0], LatMin: b.Min[1], LatMax: b.Max[1]}
}

// ID is the cache key for this box, stable at 4 decimal places.
func (b BBox) ID() string {
	return fmt.Sprintf("%.4f_%.4f_%.4f_%.4f", b.LonMin, b.LonMax, b.LatMin, b.LatMax)
}

// QueryString formats the box for the OSM map API:
// lon_min,lat_min,lon_max,lat_max.
func (b BBox) QueryString() string {
	return fmt.Sprintf("%.4f,%.4f,%.4f,%.4f", b.LonMin, b.LatMin, b.LonMax, b.LatMax)
}

func (b BBox) LonMid() float64  { return (b.LonMin + b.LonMax) / 2 }
func (b BBox) LatMid() float64  { return (b.LatMin + b.LatMax) / 2 }
func (b BBox) LonSpan() float64 { return b.LonMax - b.LonMin }
func (b BBox) LatSpan() float64 { return b.LatMax - b.LatMin }

// LonScale is the longitude compression factor at the box's mid latitude.
func (b BBox) LonScale() float64 {
	return math.Cos(b.LatMid() * math.Pi / 180)
}

// AspectRatio is the height/width ratio of the box on a locally correct
// equirectangular projection.
func (b BBox) AspectRatio() float64 {
	return b.LatSpan() / (b.LonSpan() * b.LonScale())
}

func (b BBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.LonMin, b.LatMin},
		Max: orb.Point{b.LonMax, b.LatMax},
	}
}

func (b BBox) OSMBounds() *osm.Bounds {
	return &osm.Bounds{
		MinLon: b.LonMin,
		MaxLon: b.LonMax,
		MinLat: b.LatMin,
		MaxLat: b.LatMax,
	}
}
