// SPDX-License-Identifier: MIT

package catalog

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/geo"
)

var (
	// ErrMissingColumn indicates a CSV header without a required column.
	ErrMissingColumn = errors.New("catalog: required column missing")

	// ErrBadRow indicates a CSV row whose coordinates cannot be parsed.
	ErrBadRow = errors.New("catalog: malformed row")

	// ErrUnsupportedFormat indicates a file extension LoadFile cannot read.
	ErrUnsupportedFormat = errors.New("catalog: unsupported file format")
)

// CSV column names.
const (
	colType      = "type"
	colName      = "name"
	colLatitude  = "latitude_deg"
	colLongitude = "longitude_deg"
	colMunicipal = "municipality"
	colRegion    = "region_name"
	colScheduled = "scheduled_service"
	colIATA      = "iata_code"
)

var requiredColumns = []string{colType, colName, colLatitude, colLongitude, colScheduled, colIATA}

// Document is the YAML/JSON shape of an airport list.
type Document struct {
	Nodes []core.Node `json:"nodes" yaml:"nodes"`
}

// LoadFile reads path with the reader matching its extension
// (.csv, .yaml/.yml, .json).
func LoadFile(path string) ([]core.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	var nodes []core.Node
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		nodes, err = ReadCSV(f)
	case ".yaml", ".yml":
		nodes, err = ReadYAML(f)
	case ".json":
		nodes, err = ReadJSON(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return nodes, nil
}

// ReadCSV parses an OurAirports-style CSV. Columns are located by header
// name, so extra or reordered columns are fine. Rows failing the airport
// filter are skipped; a repeated IATA code keeps its first row.
func ReadCSV(r io.Reader) ([]core.Node, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, c)
		}
	}
	field := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var (
		nodes []core.Node
		seen  = make(map[string]bool)
	)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		iata := strings.ToUpper(field(rec, colIATA))
		if !keep(field(rec, colType), field(rec, colScheduled), iata) || seen[iata] {
			continue
		}
		lat, errLat := strconv.ParseFloat(field(rec, colLatitude), 64)
		lon, errLon := strconv.ParseFloat(field(rec, colLongitude), 64)
		if errLat != nil || errLon != nil {
			return nil, fmt.Errorf("%w: line %d (%s): bad coordinates", ErrBadRow, line, iata)
		}

		seen[iata] = true
		nodes = append(nodes, core.Node{
			ID:          iata,
			DisplayName: field(rec, colName),
			Location:    location(field(rec, colMunicipal), field(rec, colRegion)),
			Latitude:    lat,
			Longitude:   lon,
		})
	}

	return nodes, nil
}

// keep applies the airport filter.
func keep(kind, scheduled, iata string) bool {
	if kind != "large_airport" && kind != "medium_airport" {
		return false
	}
	switch strings.ToLower(scheduled) {
	case "1", "yes", "true":
	default:
		return false
	}

	return iata != ""
}

// location joins municipality and region, dropping empty parts.
func location(municipality, region string) string {
	switch {
	case municipality == "":
		return region
	case region == "":
		return municipality
	default:
		return municipality + ", " + region
	}
}

// ReadYAML decodes a Document from YAML.
func ReadYAML(r io.Reader) ([]core.Node, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	return doc.Nodes, nil
}

// ReadJSON decodes a Document from JSON.
func ReadJSON(r io.Reader) ([]core.Node, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	return doc.Nodes, nil
}

// Bounds returns the bounding box of nodes.
func Bounds(nodes []core.Node) orb.Bound {
	points := make([]orb.Point, 0, len(nodes))
	for _, n := range nodes {
		points = append(points, n.Point())
	}

	return geo.Bound(points)
}
