// Package region is the public surface of the road-name plotter: load the
// roads of a bounding box, classify them by name suffix, plot them colored
// by class.
package region

import (
	"context"
	"errors"
	"sort"

	"osm-road-names/internal/config"
	"osm-road-names/internal/pbf"
	"osm-road-names/internal/provider"
	"osm-road-names/pkg/geometry"
	"osm-road-names/pkg/render"
	"osm-road-names/pkg/road"
)

// ErrNoData is returned by Plot when no load has succeeded yet.
var ErrNoData = errors.New("no road data loaded")

// Tag filters segments by an OSM tag. An empty Value matches key presence.
type Tag struct {
	Key   string
	Value string
}

type Option func(*Region)

// WithClient replaces the provider client, e.g. to point at a test server.
func WithClient(c *provider.Client) Option {
	return func(r *Region) { r.client = c }
}

// WithCacheDir sets the payload cache directory. Empty disables caching.
func WithCacheDir(dir string) Option {
	return func(r *Region) { r.client.CacheDir = dir }
}

// WithSuffixAliases installs an explicit suffix expansion table
// (e.g. "st" -> "street"). No expansion happens without it.
func WithSuffixAliases(aliases map[string]string) Option {
	return func(r *Region) { r.classifier.Aliases = aliases }
}

func WithRenderOptions(opts render.Options) Option {
	return func(r *Region) { r.renderOpts = opts }
}

// WithLegend draws a suffix legend on the plot.
func WithLegend() Option {
	return func(r *Region) { r.legend = true }
}

// Region holds the roads of one loaded bounding box. All state is scoped to
// the instance; independent regions never share data.
type Region struct {
	client     *provider.Client
	classifier road.Classifier
	renderOpts render.Options
	legend     bool

	bbox     geometry.BBox
	segments []road.Segment
	loaded   bool
}

func New(opts ...Option) *Region {
	r := &Region{
		client:     provider.NewClient(config.Load()),
		renderOpts: render.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LoadBox fetches and parses the named roads intersecting the box. An
// invalid box fails before any network I/O. A failed load leaves the region
// without usable data.
func (r *Region) LoadBox(ctx context.Context, lonMin, lonMax, latMin, latMax float64) error {
	r.loaded = false
	r.segments = nil

	bbox, err := geometry.NewBBox(lonMin, lonMax, latMin, latMax)
	if err != nil {
		return err
	}

	segments, err := r.client.LoadSegments(ctx, bbox)
	if err != nil {
		return err
	}

	merger := road.NewMerger(segments)
	merger.Merge()

	r.bbox = bbox
	r.segments = merger.Roads()
	r.loaded = true
	return nil
}

// LoadFile populates the region from a local .osm.pbf extract instead of
// the map API. The plotting box is the extent of the imported roads.
func (r *Region) LoadFile(path string) error {
	r.loaded = false
	r.segments = nil

	importer := pbf.NewRoadImporter(path)
	if err := importer.Import(); err != nil {
		return err
	}

	merger := road.NewMerger(importer.Roads())
	merger.Merge()

	r.bbox = geometry.FromBound(importer.Bound())
	r.segments = merger.Roads()
	r.loaded = true
	return nil
}

// Filter retains only loaded segments carrying all given tags.
func (r *Region) Filter(tags ...Tag) {
	if !r.loaded || len(tags) == 0 {
		return
	}
	kept := r.segments[:0]
	for _, seg := range r.segments {
		match := true
		for _, tag := range tags {
			if !seg.HasTag(tag.Key, tag.Value) {
				match = false
				break
			}
		}
		if match {
			kept = append(kept, seg)
		}
	}
	r.segments = kept
}

// Segments returns the loaded road segments.
func (r *Region) Segments() []road.Segment {
	return r.segments
}

// Suffixes returns the sorted distinct suffix categories of the loaded
// roads.
func (r *Region) Suffixes() []string {
	uniq := make(map[string]struct{})
	for _, seg := range r.segments {
		uniq[r.classifier.Classify(seg.Name)] = struct{}{}
	}
	out := make([]string, 0, len(uniq))
	for s := range uniq {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Plot renders the loaded roads colored by suffix class and writes a PNG to
// filename, overwriting any existing file. Plotting before a successful
// load fails with ErrNoData and writes nothing.
func (r *Region) Plot(filename string) error {
	if !r.loaded {
		return ErrNoData
	}

	categories := r.Suffixes()
	if len(categories) == 0 {
		categories = []string{road.SuffixUnknown}
	}
	palette := road.BuildPalette(categories)
	unknown := palette[road.SuffixUnknown]

	lines := make([]render.Line, 0, len(r.segments))
	for _, seg := range r.segments {
		c, ok := palette[r.classifier.Classify(seg.Name)]
		if !ok {
			c = unknown
		}
		lines = append(lines, render.Line{Geometry: seg.Geometry, Color: c})
	}

	opts := r.renderOpts
	if r.legend {
		opts.Legend = make([]render.LegendEntry, 0, len(categories))
		for _, cat := range categories {
			opts.Legend = append(opts.Legend, render.LegendEntry{Label: cat, Color: palette[cat]})
		}
	}

	return render.Plot(lines, r.bbox, filename, opts)
}
