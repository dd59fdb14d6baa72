package provider

import (
	"bytes"
	"context"
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	"osm-road-names/pkg/geometry"
	"osm-road-names/pkg/road"
)

// ParseSegments decodes an OSM XML payload into road segments. Ways must
// carry a highway tag; a missing name is kept as "" and classifies as
// unknown. Segments whose geometry does not intersect the box are dropped.
func ParseSegments(ctx context.Context, data []byte, bbox geometry.BBox) ([]road.Segment, error) {
	nodes := make(map[osm.NodeID]orb.Point)
	var ways []*osm.Way

	scanner := osmxml.New(ctx, bytes.NewReader(data))
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			nodes[o.ID] = orb.Point{o.Lon, o.Lat}
		case *osm.Way:
			if o.Tags.Find("highway") != "" {
				ways = append(ways, o)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Err: err}
	}
	if len(nodes) == 0 && len(ways) == 0 {
		return nil, &ParseError{Err: errors.New("payload contains no map data")}
	}

	bound := bbox.Bound()
	segments := make([]road.Segment, 0, len(ways))
	for _, w := range ways {
		geom := make(orb.LineString, 0, len(w.Nodes))
		for _, wn := range w.Nodes {
			if pt, ok := nodes[wn.ID]; ok {
				geom = append(geom, pt)
			}
		}
		if len(geom) < 2 {
			continue
		}
		if !geom.Bound().Intersects(bound) {
			continue
		}
		segments = append(segments, road.Segment{
			ID:       w.ID,
			Name:     w.Tags.Find("name"),
			Tags:     w.Tags,
			Geometry: geom,
		})
	}
	return segments, nil
}
