package pbf

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"

	"osm-road-names/pkg/road"
)

func TestExportRoadJSON(t *testing.T) {
	roads := []road.Segment{
		{
			ID:       100,
			Name:     "Main Street",
			Tags:     osm.Tags{{Key: "highway", Value: "residential"}},
			Geometry: orb.LineString{{-123.15, 49.27}, {-123.14, 49.27}},
		},
	}
	path := filepath.Join(t.TempDir(), "roads.json")
	if err := ExportRoadJSON(roads, path); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded []road.Segment
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported file is not valid json: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Name != "Main Street" {
		t.Errorf("unexpected export content: %+v", decoded)
	}
	if len(decoded[0].Geometry) != 2 {
		t.Errorf("geometry not preserved: %+v", decoded[0].Geometry)
	}
}
