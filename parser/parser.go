package parser

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/renkav/movingai/grid"
)

// ParseMap parses a string in the MovingAI .map format.
// Header lines of the form `key value` set the map type and dimensions;
// everything after the `map` marker line is body, each line contributing
// its bytes row-major to the cell sequence. Construction is delegated to
// grid.NewMap, so dimension mismatches surface as grid.ErrDimensionMismatch.
// Returns ErrMalformedHeader for a non-integer height/width and
// ErrMissingMapBody when no `map` marker exists.
func ParseMap(contents string) (*grid.Map, error) {
	var (
		mapType = "empty"
		height  int
		width   int
		cells   []grid.Cell
		inBody  bool
	)

	sc := bufio.NewScanner(strings.NewReader(contents))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if inBody {
			cells = append(cells, []grid.Cell(line)...)
			continue
		}
		if strings.TrimSpace(line) == "map" {
			inBody = true
			continue
		}
		// Header lines hold exactly one key and one value; anything else
		// (including the version noise some files carry) is ignored.
		fields := strings.Split(line, " ")
		if len(fields) != 2 {
			continue
		}
		key, value := fields[0], fields[1]
		var err error
		switch key {
		case "type":
			mapType = value
		case "height":
			if height, err = strconv.Atoi(value); err != nil {
				return nil, fmt.Errorf("%w: height %q", ErrMalformedHeader, value)
			}
		case "width":
			if width, err = strconv.Atoi(value); err != nil {
				return nil, fmt.Errorf("%w: width %q", ErrMalformedHeader, value)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser: scanning map contents: %w", err)
	}
	if !inBody {
		return nil, ErrMissingMapBody
	}

	return grid.NewMap(mapType, height, width, cells)
}

// ParseMapFile reads path and parses it as a .map file.
func ParseMapFile(path string) (*grid.Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: reading map file: %w", err)
	}
	return ParseMap(string(raw))
}

// ParseScen parses a string in the MovingAI .scen format into SceneRecords.
// The leading `version` line and blank lines are skipped; every other line
// must hold exactly 9 tab-separated fields. A wrong field count or a
// non-numeric field yields ErrMalformedRecord wrapped with the line number.
func ParseScen(contents string) ([]SceneRecord, error) {
	var records []SceneRecord

	lineNo := 0
	sc := bufio.NewScanner(strings.NewReader(contents))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "version") {
			continue
		}
		rec, err := parseScenLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser: scanning scenario contents: %w", err)
	}

	return records, nil
}

// ParseScenFile reads path and parses it as a .scen file.
func ParseScenFile(path string) ([]SceneRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: reading scenario file: %w", err)
	}
	return ParseScen(string(raw))
}

// parseScenLine converts one tab-separated scenario line into a SceneRecord.
func parseScenLine(line string, lineNo int) (SceneRecord, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != scenFields {
		return SceneRecord{}, fmt.Errorf("%w: line %d has %d fields, want %d",
			ErrMalformedRecord, lineNo, len(fields), scenFields)
	}

	bucket, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return SceneRecord{}, recordErr(lineNo, "bucket", fields[0])
	}
	ints := make([]int, 6)
	names := [6]string{"map width", "map height", "start x", "start y", "goal x", "goal y"}
	for i := 0; i < 6; i++ {
		if ints[i], err = strconv.Atoi(fields[2+i]); err != nil {
			return SceneRecord{}, recordErr(lineNo, names[i], fields[2+i])
		}
	}
	optimal, err := strconv.ParseFloat(fields[8], 64)
	if err != nil {
		return SceneRecord{}, recordErr(lineNo, "optimal length", fields[8])
	}

	return SceneRecord{
		Bucket:        uint32(bucket),
		MapFile:       fields[1],
		MapWidth:      ints[0],
		MapHeight:     ints[1],
		StartPos:      grid.Coords{X: ints[2], Y: ints[3]},
		GoalPos:       grid.Coords{X: ints[4], Y: ints[5]},
		OptimalLength: optimal,
	}, nil
}

// recordErr wraps ErrMalformedRecord with the line and field that failed.
func recordErr(lineNo int, field, value string) error {
	return fmt.Errorf("%w: line %d: bad %s %q", ErrMalformedRecord, lineNo, field, value)
}
