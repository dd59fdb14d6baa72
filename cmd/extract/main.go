package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"osm-road-names/internal/pbf"
	"osm-road-names/pkg/road"
)

var flagPbfFile = flag.String("f", "extract.osm.pbf", "input .osm.pbf file")
var flagOutputFile = flag.String("o", "roads.json", "output road network file")

func main() {
	flag.Parse()
	godotenv.Load()

	start := time.Now()
	importer := pbf.NewRoadImporter(*flagPbfFile)
	if err := importer.Import(); err != nil {
		log.Fatalf("import %s: %v", *flagPbfFile, err)
	}
	fmt.Printf("[TIME] import: %s\n", time.Since(start))

	start = time.Now()
	merger := road.NewMerger(importer.Roads())
	merger.Merge()
	fmt.Printf("[TIME] merge: %s\n", time.Since(start))
	fmt.Printf("road segments: %d\n", len(merger.Roads()))
	fmt.Printf("merges: %d\n", merger.MergeCount())
	fmt.Printf("unmergable segments: %d\n", merger.UnmergableRoadCount())

	start = time.Now()
	if err := pbf.ExportRoadJSON(merger.Roads(), *flagOutputFile); err != nil {
		log.Fatalf("export %s: %v", *flagOutputFile, err)
	}
	fmt.Printf("[TIME] export: %s\n", time.Since(start))
	fmt.Printf("exported road network to %s\n", *flagOutputFile)
}
