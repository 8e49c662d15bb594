package topology

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/gridmesh/den2ne/core"
)

// Loader reads the CSV file family of §6 into a Topology.
type Loader struct{}

// NewLoader returns a Loader. It carries no state; every method opens
// and closes its own file.
func NewLoader() *Loader { return &Loader{} }

// LoadLoads parses a loads.csv file: header "Bus_no, 15, 30, ...", one
// row per load-bearing node, values rounded to 3 decimals.
func (Loader) LoadLoads(path string) (map[string][]float64, error) {
	rows, err := readAllRecords(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("loads.csv: %w", ErrMissingHeader)
	}

	out := make(map[string][]float64, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 2 {
			return nil, fmt.Errorf("loads.csv: row %v: %w", row, ErrMalformedRecord)
		}
		id := row[0]
		vec := make([]float64, len(row)-1)
		for i, cell := range row[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("loads.csv: node %s column %d: %w", id, i, ErrMalformedRecord)
			}
			vec[i] = round3(v)
		}
		out[id] = vec
	}
	return out, nil
}

// LoadEdges parses a links.csv file: "Node A, Node B, Length (ft.), Config.".
func (Loader) LoadEdges(path string) ([]NormalEdge, error) {
	rows, err := readAllRecords(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("links.csv: %w", ErrMissingHeader)
	}

	out := make([]NormalEdge, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 4 {
			return nil, fmt.Errorf("links.csv: row %v: %w", row, ErrMalformedRecord)
		}
		dist, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("links.csv: dist %q: %w", row[2], ErrMalformedRecord)
		}
		conf, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("links.csv: conf %q: %w", row[3], ErrMalformedRecord)
		}
		out = append(out, NormalEdge{A: row[0], B: row[1], DistFt: dist, ConfID: conf})
	}
	return out, nil
}

// LoadEdgesConfig parses a links_config*.csv file: "id, coef_r, i_max, section".
func (Loader) LoadEdgesConfig(path string) (map[int]LinkConfig, error) {
	rows, err := readAllRecords(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("links_config.csv: %w", ErrMissingHeader)
	}

	out := make(map[int]LinkConfig, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 3 {
			return nil, fmt.Errorf("links_config.csv: row %v: %w", row, ErrMalformedRecord)
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("links_config.csv: id %q: %w", row[0], ErrMalformedRecord)
		}
		coefR, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("links_config.csv: coef_r %q: %w", row[1], ErrMalformedRecord)
		}
		iMax, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("links_config.csv: i_max %q: %w", row[2], ErrMalformedRecord)
		}
		section := ""
		if len(row) >= 4 {
			section = row[3]
		}
		out[id] = LinkConfig{CoefR: coefR, IMax: iMax, Section: section}
	}
	return out, nil
}

// LoadSwitches parses an optional switches.csv file: "Node A, Node B, State".
func (Loader) LoadSwitches(path string) ([]SwitchEdge, error) {
	rows, err := readAllRecords(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	out := make([]SwitchEdge, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 3 {
			return nil, fmt.Errorf("switches.csv: row %v: %w", row, ErrMalformedRecord)
		}
		state, err := parseSwitchState(row[2])
		if err != nil {
			return nil, err
		}
		out = append(out, SwitchEdge{A: row[0], B: row[1], State: state})
	}
	return out, nil
}

// LoadPositions parses an optional node_positions.csv file: "Node, X, Y".
// The core never consumes this; it exists for callers that render.
func (Loader) LoadPositions(path string) (map[string]NodePosition, error) {
	rows, err := readAllRecords(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	out := make(map[string]NodePosition, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 3 {
			return nil, fmt.Errorf("node_positions.csv: row %v: %w", row, ErrMalformedRecord)
		}
		x, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("node_positions.csv: x %q: %w", row[1], ErrMalformedRecord)
		}
		y, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("node_positions.csv: y %q: %w", row[2], ErrMalformedRecord)
		}
		out[row[0]] = NodePosition{X: x, Y: y}
	}
	return out, nil
}

// Load reads the full file family rooted at dir, treating switches.csv
// and node_positions.csv as optional (a missing file yields an empty,
// not an error, result for those two).
func (l Loader) Load(dir string) (*Topology, error) {
	loads, err := l.LoadLoads(dir + "/loads.csv")
	if err != nil {
		return nil, err
	}
	edges, err := l.LoadEdges(dir + "/links.csv")
	if err != nil {
		return nil, err
	}
	configs, err := l.LoadEdgesConfig(dir + "/links_config.csv")
	if err != nil {
		return nil, err
	}

	var switches []SwitchEdge
	if fileExists(dir + "/switches.csv") {
		switches, err = l.LoadSwitches(dir + "/switches.csv")
		if err != nil {
			return nil, err
		}
	}

	var positions map[string]NodePosition
	if fileExists(dir + "/node_positions.csv") {
		positions, err = l.LoadPositions(dir + "/node_positions.csv")
		if err != nil {
			return nil, err
		}
	}

	return &Topology{
		Loads:     loads,
		Normal:    edges,
		Switches:  switches,
		Configs:   configs,
		Positions: positions,
	}, nil
}

func parseSwitchState(s string) (core.SwitchState, error) {
	switch s {
	case "open":
		return core.StateOpen, nil
	case "closed":
		return core.StateClosed, nil
	default:
		return "", fmt.Errorf("switches.csv: state %q: %w", s, ErrUnknownSwitchState)
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func readAllRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
