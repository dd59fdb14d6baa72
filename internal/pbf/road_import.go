package pbf

import (
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/qedus/osmpbf"

	"osm-road-names/pkg/road"
)

// RoadImporter reads named highways out of a local .osm.pbf extract. It does
// two passes over the file: first nodes, then ways.
type RoadImporter struct {
	filename string
	roads    []road.Segment
	nodes    map[int64]orb.Point
	bound    orb.Bound
	hasBound bool
}

func NewRoadImporter(filename string) *RoadImporter {
	return &RoadImporter{
		filename: filename,
		nodes:    make(map[int64]orb.Point),
	}
}

func (ri *RoadImporter) Import() error {
	if err := ri.collectNodes(); err != nil {
		return err
	}

	file, err := os.Open(ri.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)
	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return err
	}

	var wg sync.WaitGroup
	roadsChan := make(chan road.Segment, 1000)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for segment := range roadsChan {
			ri.roads = append(ri.roads, segment)
			ri.extendBound(segment.Geometry)
		}
	}()

	for {
		v, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			close(roadsChan)
			wg.Wait()
			return err
		}
		w, ok := v.(*osmpbf.Way)
		if !ok {
			continue
		}
		if _, isHighway := w.Tags["highway"]; !isHighway {
			continue
		}
		segment := road.Segment{
			ID:   osm.WayID(w.ID),
			Name: w.Tags["name"],
			Tags: tagsFromMap(w.Tags),
		}
		segment.Geometry = make(orb.LineString, 0, len(w.NodeIDs))
		for _, nodeID := range w.NodeIDs {
			if pt, ok := ri.nodes[nodeID]; ok {
				segment.Geometry = append(segment.Geometry, pt)
			}
		}
		if len(segment.Geometry) >= 2 {
			roadsChan <- segment
		}
	}
	close(roadsChan)
	wg.Wait()
	return nil
}

func (ri *RoadImporter) Roads() []road.Segment {
	return ri.roads
}

// Bound is the union of all imported geometry, used to size a plot of the
// whole extract.
func (ri *RoadImporter) Bound() orb.Bound {
	return ri.bound
}

func (ri *RoadImporter) extendBound(geom orb.LineString) {
	if !ri.hasBound {
		ri.bound = geom.Bound()
		ri.hasBound = true
		return
	}
	ri.bound = ri.bound.Union(geom.Bound())
}

func (ri *RoadImporter) collectNodes() error {
	file, err := os.Open(ri.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)
	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return err
	}

	for {
		v, err := decoder.Decode()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if n, ok := v.(*osmpbf.Node); ok {
			ri.nodes[n.ID] = orb.Point{n.Lon, n.Lat}
		}
	}
}

func tagsFromMap(m map[string]string) osm.Tags {
	tags := make(osm.Tags, 0, len(m))
	for k, v := range m {
		tags = append(tags, osm.Tag{Key: k, Value: v})
	}
	tags.SortByKeyValue()
	return tags
}
