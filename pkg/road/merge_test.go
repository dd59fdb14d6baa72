package road

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

func seg(id int64, name string, pts ...orb.Point) Segment {
	return Segment{ID: osm.WayID(id), Name: name, Geometry: orb.LineString(pts)}
}

func TestMergeSameName(t *testing.T) {
	roads := []Segment{
		seg(1, "Main Street", orb.Point{0, 0}, orb.Point{1, 0}),
		seg(2, "Main Street", orb.Point{1, 0}, orb.Point{2, 0}),
		seg(3, "Main Street", orb.Point{2, 0}, orb.Point{3, 0}),
	}
	m := NewMerger(roads)
	m.Merge()

	if len(m.Roads()) != 1 {
		t.Fatalf("expected 1 merged road, got %d", len(m.Roads()))
	}
	if m.MergeCount() != 2 {
		t.Errorf("expected 2 merges, got %d", m.MergeCount())
	}
	got := m.Roads()[0].Geometry
	want := orb.LineString{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	if len(got) != len(want) {
		t.Fatalf("wrong merged geometry length: %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: %v != %v", i, got[i], want[i])
		}
	}
}

func TestMergeKeepsDifferentNamesApart(t *testing.T) {
	roads := []Segment{
		seg(1, "Main Street", orb.Point{0, 0}, orb.Point{1, 0}),
		seg(2, "Oak Avenue", orb.Point{1, 0}, orb.Point{2, 0}),
	}
	m := NewMerger(roads)
	m.Merge()
	if len(m.Roads()) != 2 {
		t.Errorf("expected 2 roads, got %d", len(m.Roads()))
	}
	if m.MergeCount() != 0 {
		t.Errorf("expected no merges, got %d", m.MergeCount())
	}
}

func TestMergeSkipsUnnamedAndDegenerate(t *testing.T) {
	roads := []Segment{
		seg(1, "", orb.Point{0, 0}, orb.Point{1, 0}),
		seg(2, "", orb.Point{1, 0}, orb.Point{2, 0}),
		seg(3, "Short", orb.Point{5, 5}),
	}
	m := NewMerger(roads)
	m.Merge()
	if len(m.Roads()) != 2 {
		t.Errorf("unnamed segments must not merge, got %d roads", len(m.Roads()))
	}
	if m.UnmergableRoadCount() != 1 {
		t.Errorf("expected 1 unmergable road, got %d", m.UnmergableRoadCount())
	}
}
