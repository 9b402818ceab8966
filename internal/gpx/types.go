package gpx

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// timeLayouts are tried in order. Timestamps without a zone are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp is a GPX <time> value that may be absent
type Timestamp struct {
	time.Time
	Valid bool
}

func (t *Timestamp) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw string
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*t = Timestamp{}
		return nil
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			*t = Timestamp{Time: parsed, Valid: true}
			return nil
		}
	}

	return fmt.Errorf("invalid time %q", raw)
}

// Point is a <trkpt>. Lat and Lon are nil when the attribute is missing.
type Point struct {
	Lat  *float64  `xml:"lat,attr"`
	Lon  *float64  `xml:"lon,attr"`
	Time Timestamp `xml:"time"`
}

// TrackSegment is a <trkseg>
type TrackSegment struct {
	Points []Point `xml:"trkpt"`
}

// Track is a <trk>
type Track struct {
	Name     string         `xml:"name,omitempty"`
	Segments []TrackSegment `xml:"trkseg"`
}

// GPX is the subset of the document this package reads
type GPX struct {
	XMLName xml.Name `xml:"gpx"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`
	Tracks  []Track  `xml:"trk"`
}
