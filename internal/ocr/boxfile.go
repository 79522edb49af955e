package ocr

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseBoxes reads Tesseract box-file output.
//
// Each non-blank line has the form
//
//	<char> <x1> <y1> <x2> <y2> [<page>]
//
// with coordinates measured from the bottom-left corner of the image. The
// page column is optional and ignored. Numbers are read from the right, so a
// whitespace glyph such as "  1 2 3 4 0" keeps " " as its character. Boxes
// are returned in input order.
func ParseBoxes(r io.Reader) ([]CharBox, error) {
	scanner := bufio.NewScanner(r)
	boxes := make([]CharBox, 0)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		box, err := parseBoxLine(line)
		if err != nil {
			return nil, fmt.Errorf("box line %d: %w", lineNum, err)
		}
		boxes = append(boxes, box)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read box output: %w", err)
	}

	return boxes, nil
}

// parseBoxLine splits line into its trailing numeric columns and the
// character in front of them.
func parseBoxLine(line string) (CharBox, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return CharBox{}, fmt.Errorf("expected at least 5 fields, got %d in %q", len(fields), line)
	}

	// Five fields are "<char> x1 y1 x2 y2" unless the line starts with
	// whitespace, in which case the glyph is blank and a page column follows.
	numeric := 5
	if len(fields) == 5 && !startsWithSpace(line) {
		numeric = 4
	}

	var coords [4]int
	end := len(line)
	for i := 0; i < numeric; i++ {
		field := fields[len(fields)-1-i]
		end = len(strings.TrimRight(line[:end], " \t")) - len(field)

		v, err := strconv.Atoi(field)
		if err != nil {
			return CharBox{}, fmt.Errorf("invalid coordinate %q: %w", field, err)
		}
		// The page column, when present, is read but not kept.
		if j := numeric - 1 - i; j < 4 {
			coords[j] = v
		}
	}

	char := strings.TrimSpace(line[:end])
	if char == "" {
		if end == 0 {
			return CharBox{}, fmt.Errorf("missing character in %q", line)
		}
		char = line[:1]
	}

	return CharBox{
		Char: char,
		X1:   coords[0],
		Y1:   coords[1],
		X2:   coords[2],
		Y2:   coords[3],
	}, nil
}

func startsWithSpace(s string) bool {
	return s != "" && (s[0] == ' ' || s[0] == '\t')
}
