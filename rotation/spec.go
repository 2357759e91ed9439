package rotation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"png2pdf/contracts"
)

// pageRange is an inclusive run of 1-based page numbers.
type pageRange struct {
	first, last int
}

// RotateSet holds the pages that need a 90° rotation. Ranges are stored as
// given, so "1-2000000000" costs the same as "1".
type RotateSet struct {
	ranges []pageRange
}

// Has reports whether the zero-based page index is selected.
func (s RotateSet) Has(index int) bool {
	if index < 0 || index == math.MaxInt {
		return false
	}
	page := index + 1
	for _, r := range s.ranges {
		if r.first <= page && page <= r.last {
			return true
		}
	}
	return false
}

func (s *RotateSet) add(first, last int) {
	if first > last {
		return
	}
	s.ranges = append(s.ranges, pageRange{first: first, last: last})
}

func parsePage(token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", contracts.ErrParse, err)
	}
	return n, nil
}

// ParseSpec turns "1,3,5-7" into the set selecting zero-based indices
// {0,2,4,5,6}. Ranges are inclusive; a reversed range selects nothing. Page
// numbers are not checked against the number of images.
func ParseSpec(spec string) (RotateSet, error) {
	var set RotateSet
	if strings.TrimSpace(spec) == "" {
		return set, nil
	}

	for _, part := range strings.Split(spec, ",") {
		if startStr, endStr, isRange := strings.Cut(part, "-"); isRange {
			start, err := parsePage(startStr)
			if err != nil {
				return RotateSet{}, err
			}
			end, err := parsePage(endStr)
			if err != nil {
				return RotateSet{}, err
			}
			set.add(start, end)
			continue
		}

		page, err := parsePage(part)
		if err != nil {
			return RotateSet{}, err
		}
		set.add(page, page)
	}
	return set, nil
}
