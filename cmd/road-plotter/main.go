package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"osm-road-names/pkg/region"
)

// Canned Vancouver, BC test areas.
var areas = map[string][4]float64{
	"small": {-123.1565, -123.1381, 49.2721, 49.281},
	"sm":    {-123.1565, -123.1381, 49.25, 49.281},
	"med":   {-123.27, -123.13, 49.23, 49.28},
	"large": {-123.2901, -123.0007, 49.2296, 49.3692},
}

func main() {
	area := flag.String("area", "small", "canned area: small, sm, med, large")
	bboxFlag := flag.String("bbox", "", "explicit box: lon_min,lon_max,lat_min,lat_max (overrides -area)")
	pbfFile := flag.String("pbf", "", "load roads from a local .osm.pbf extract instead of the map API")
	output := flag.String("o", "roads", "output image name (.png appended if missing)")
	legend := flag.Bool("legend", false, "draw a suffix legend")
	flag.Parse()

	godotenv.Load()

	opts := []region.Option{}
	if *legend {
		opts = append(opts, region.WithLegend())
	}
	r := region.New(opts...)

	start := time.Now()
	if *pbfFile != "" {
		if err := r.LoadFile(*pbfFile); err != nil {
			log.Fatalf("load %s: %v", *pbfFile, err)
		}
	} else {
		box, err := resolveBox(*area, *bboxFlag)
		if err != nil {
			log.Fatal(err)
		}
		if err := r.LoadBox(context.Background(), box[0], box[1], box[2], box[3]); err != nil {
			log.Fatalf("load box: %v", err)
		}
	}
	fmt.Printf("[TIME] load: %s\n", time.Since(start))
	fmt.Printf("roads: %d\n", len(r.Segments()))
	fmt.Printf("suffix classes: %s\n", strings.Join(r.Suffixes(), ", "))

	start = time.Now()
	if err := r.Plot(*output); err != nil {
		log.Fatalf("plot: %v", err)
	}
	fmt.Printf("[TIME] plot: %s\n", time.Since(start))
}

func resolveBox(area, bboxFlag string) ([4]float64, error) {
	if bboxFlag != "" {
		parts := strings.Split(bboxFlag, ",")
		if len(parts) != 4 {
			return [4]float64{}, fmt.Errorf("bad -bbox %q: need lon_min,lon_max,lat_min,lat_max", bboxFlag)
		}
		var box [4]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return [4]float64{}, fmt.Errorf("bad -bbox value %q: %v", p, err)
			}
			box[i] = v
		}
		return box, nil
	}
	box, ok := areas[area]
	if !ok {
		return [4]float64{}, fmt.Errorf("unknown area %q", area)
	}
	return box, nil
}
