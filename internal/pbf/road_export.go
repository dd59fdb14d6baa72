package pbf

import (
	"encoding/json"
	"os"

	"osm-road-names/pkg/road"
)

func ExportRoadJSON(roads []road.Segment, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewEncoder(file).Encode(roads)
}
