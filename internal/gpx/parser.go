package gpx

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/jengzang/gpx-pace-backend/internal/models"
	"github.com/jengzang/gpx-pace-backend/internal/spatial"
	"golang.org/x/net/html/charset"
)

// ParseFile reads a GPX file and returns its points annotated with cumulative
// distance
func ParseFile(filename string) ([]models.TrackPoint, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, models.NewError(models.KindParse, err, "failed to open track file")
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader decodes GPX from r and annotates it
func ParseReader(r io.Reader) ([]models.TrackPoint, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Annotate(doc), nil
}

// Decode decodes the GPX document structure without annotating it
func Decode(r io.Reader) (*GPX, error) {
	decoder := xml.NewDecoder(r)
	// Garmin and older loggers still write ISO-8859-1 and windows-1252 files
	decoder.CharsetReader = charset.NewReaderLabel

	var doc GPX
	if err := decoder.Decode(&doc); err != nil {
		return nil, models.NewError(models.KindParse, err, "failed to parse GPX")
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// validate requires lat and lon on every track point
func (g *GPX) validate() error {
	for ti, track := range g.Tracks {
		for si, segment := range track.Segments {
			for pi, p := range segment.Points {
				if p.Lat == nil || p.Lon == nil {
					return models.NewError(models.KindParse, nil,
						"failed to parse GPX: track %d segment %d point %d is missing lat or lon",
						ti, si, pi)
				}
			}
		}
	}
	return nil
}

// Annotate flattens tracks, segments and points in file order and sums the
// geodesic distance between consecutive points. Segment and track boundaries
// do not reset the running total. doc must come from Decode.
func Annotate(doc *GPX) []models.TrackPoint {
	points := make([]models.TrackPoint, 0, doc.pointCount())

	var total float64
	var prev *Point

	for ti := range doc.Tracks {
		for si := range doc.Tracks[ti].Segments {
			for pi := range doc.Tracks[ti].Segments[si].Points {
				p := &doc.Tracks[ti].Segments[si].Points[pi]
				if prev != nil {
					total += spatial.GeodesicDistance(*prev.Lat, *prev.Lon, *p.Lat, *p.Lon)
				}
				points = append(points, models.TrackPoint{
					Time:               p.Time.Time,
					HasTime:            p.Time.Valid,
					Latitude:           *p.Lat,
					Longitude:          *p.Lon,
					CumulativeDistance: total,
				})
				prev = p
			}
		}
	}

	return points
}

func (g *GPX) pointCount() int {
	n := 0
	for _, track := range g.Tracks {
		for _, segment := range track.Segments {
			n += len(segment.Points)
		}
	}
	return n
}
