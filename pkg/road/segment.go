package road

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Segment is one named road polyline. Segments are read-only once loaded.
type Segment struct {
	ID       osm.WayID      `json:"id"`
	Name     string         `json:"name"`
	Tags     osm.Tags       `json:"tags,omitempty"`
	Geometry orb.LineString `json:"geometry"`
}

// Suffix is the segment's classification category under the default rule.
func (s Segment) Suffix() string {
	return ClassifySuffix(s.Name)
}

// HasTag reports whether the segment carries the given tag. An empty value
// matches any value for the key.
func (s Segment) HasTag(key, value string) bool {
	v := s.Tags.Find(key)
	if v == "" {
		return false
	}
	return value == "" || v == value
}

func (s Segment) start() orb.Point { return s.Geometry[0] }
func (s Segment) end() orb.Point   { return s.Geometry[len(s.Geometry)-1] }
