package road

import (
	"github.com/paulmach/orb"
)

// Merger joins segments of the same street so one name renders as one
// polyline instead of many OSM way fragments.
type Merger struct {
	roads           []Segment
	mergeCount      int
	unmergableCount int
}

func NewMerger(roads []Segment) *Merger {
	return &Merger{roads: roads}
}

func (m *Merger) Merge() {
	// Index segments by their endpoints.
	nodeToSegments := make(map[orb.Point][]int)
	usable := make([]Segment, 0, len(m.roads))
	for _, seg := range m.roads {
		if len(seg.Geometry) < 2 {
			m.unmergableCount++
			continue
		}
		usable = append(usable, seg)
	}
	for i, seg := range usable {
		nodeToSegments[seg.start()] = append(nodeToSegments[seg.start()], i)
		nodeToSegments[seg.end()] = append(nodeToSegments[seg.end()], i)
	}

	merged := make([]bool, len(usable))
	var newRoads []Segment

	for i := range usable {
		if merged[i] {
			continue
		}
		merged[i] = true
		current := usable[i]

		for {
			connected := nodeToSegments[current.end()]

			foundNext := false
			for _, j := range connected {
				if merged[j] {
					continue
				}
				next := usable[j]
				if !canMerge(current, next) || next.start() != current.end() {
					continue
				}
				current = mergeTwoSegments(current, next)
				merged[j] = true
				m.mergeCount++
				foundNext = true
				break
			}

			if !foundNext {
				break
			}
		}

		newRoads = append(newRoads, current)
	}

	m.roads = newRoads
}

// Only same-named streets merge; unnamed fragments stay separate so the
// unknown category keeps its per-way geometry.
func canMerge(s1, s2 Segment) bool {
	return s1.Name != "" && s1.Name == s2.Name
}

func mergeTwoSegments(s1, s2 Segment) Segment {
	out := Segment{
		ID:   s1.ID,
		Name: s1.Name,
		Tags: s1.Tags,
	}
	out.Geometry = append(out.Geometry, s1.Geometry...)
	// Skip the shared joint point.
	out.Geometry = append(out.Geometry, s2.Geometry[1:]...)
	return out
}

func (m *Merger) Roads() []Segment {
	return m.roads
}

func (m *Merger) MergeCount() int {
	return m.mergeCount
}

func (m *Merger) UnmergableRoadCount() int {
	return m.unmergableCount
}
