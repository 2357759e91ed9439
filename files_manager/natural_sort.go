package files_manager

import (
	"path/filepath"
	"slices"
	"strings"
)

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// splitRuns splits s into maximal alternating runs of ASCII digits and non-digits:
// "img10b" -> ["img", "10", "b"].
func splitRuns(s string) []string {
	var runs []string
	for start := 0; start < len(s); {
		digit := isDigit(s[start])
		end := start + 1
		for end < len(s) && isDigit(s[end]) == digit {
			end++
		}
		runs = append(runs, s[start:end])
		start = end
	}
	return runs
}

func isNumber(run string) bool {
	return run != "" && isDigit(run[0])
}

// compareNumeric compares two digit runs by value without converting them,
// so runs longer than an int64 still order correctly.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// NaturalCompare orders two file names the way a human would: digit runs are
// compared by numeric value, everything else by code point. Only base names
// are compared. A name that runs out of runs sorts first.
func NaturalCompare(a, b string) int {
	aRuns := splitRuns(filepath.Base(a))
	bRuns := splitRuns(filepath.Base(b))

	for i := 0; i < max(len(aRuns), len(bRuns)); i++ {
		var aRun, bRun string
		if i < len(aRuns) {
			aRun = aRuns[i]
		}
		if i < len(bRuns) {
			bRun = bRuns[i]
		}

		if isNumber(aRun) && isNumber(bRun) {
			if c := compareNumeric(aRun, bRun); c != 0 {
				return c
			}
			continue
		}
		if c := strings.Compare(aRun, bRun); c != 0 {
			return c
		}
	}
	return 0
}

// SortNatural sorts paths in place by NaturalCompare. Paths the comparator
// considers equal keep their relative order.
func SortNatural(paths []string) {
	slices.SortStableFunc(paths, NaturalCompare)
}
