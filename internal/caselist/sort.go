package caselist

import (
	"math"
	"sort"
	"strconv"
)

// SortNumeric reorders lines ascending by the numeric value each line
// starts with. The sort is stable: lines with equal keys keep their input
// order. Leading whitespace is skipped; a line with empty or non-numeric
// leading content sorts before every numeric line.
func SortNumeric(lines []string) {
	keyed := make([]struct {
		key  float64
		line string
	}, len(lines))
	for i, line := range lines {
		keyed[i].key = numericKey(line)
		keyed[i].line = line
	}
	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].key < keyed[j].key
	})
	for i := range keyed {
		lines[i] = keyed[i].line
	}
}

// numericKey parses the leading numeric token of a line. Non-numeric and
// blank leading content yields -Inf, the conventional numeric-sort
// minimum, so such lines group at the front in their original order.
func numericKey(line string) float64 {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	start := i
	if i < len(line) && (line[i] == '-' || line[i] == '+') {
		i++
	}
	digits := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
		digits++
	}
	if i < len(line) && line[i] == '.' {
		i++
		for i < len(line) && line[i] >= '0' && line[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.Inf(-1)
	}
	v, err := strconv.ParseFloat(line[start:i], 64)
	if err != nil {
		return math.Inf(-1)
	}
	return v
}
