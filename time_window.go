package main

import (
	"strconv"
	"strings"

	"github.com/andareed/popviz/timewindow"
)

func parseYear(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	y, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return y, true
}

// defaultWindowBounds mirrors the first-load defaults of the time window: a
// range from DefaultRangeStart (or the first year, if later) to the last
// year, and the last year as the snapshot.
func defaultWindowBounds(min, max int) (int, int) {
	start := timewindow.Clamp(timewindow.DefaultRangeStart, min, max)
	return start, max
}

// shiftRange moves [start, end] by delta, keeping its width and staying
// inside [min, max].
func shiftRange(start, end, delta, min, max int) (int, int) {
	width := end - start
	if width >= max-min {
		return min, max
	}
	start += delta
	end += delta
	if start < min {
		start, end = min, min+width
	}
	if end > max {
		start, end = max-width, max
	}
	return start, end
}

// expandRange grows the start edge for a negative delta and the end edge
// for a positive one.
func expandRange(start, end, delta, min, max int) (int, int) {
	switch {
	case delta < 0:
		start = timewindow.Clamp(start+delta, min, max)
		if start > end {
			end = start
		}
	case delta > 0:
		end = timewindow.Clamp(end+delta, min, max)
		if end < start {
			start = end
		}
	}
	return start, end
}
