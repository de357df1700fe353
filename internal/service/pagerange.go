package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	apperrors "pdf-master-pro/pkg/errors"
)

// ParsePageRange turns a page-range spec like "1-3,5" into a strictly
// ascending, deduplicated list of 1-based page indices within
// [1, pageCount]. An empty spec selects every page.
//
// Range endpoints are clamped into the document bounds ("8-20" on a
// 10-page document yields 8..10), while a bare out-of-range number is
// silently dropped ("15" on a 10-page document yields nothing). The
// asymmetry is deliberate: existing clients depend on it.
func ParsePageRange(spec string, pageCount int) ([]int, error) {
	spec = strings.ReplaceAll(spec, " ", "")
	if spec == "" {
		spec = fmt.Sprintf("1-%d", pageCount)
	}

	selected := make(map[int]struct{})
	for _, token := range strings.Split(spec, ",") {
		if token == "" {
			continue
		}
		if dash := strings.Index(token, "-"); dash >= 0 {
			lo, err := strconv.Atoi(token[:dash])
			if err != nil {
				return nil, apperrors.NewValidationError("invalid page range", token)
			}
			hi, err := strconv.Atoi(token[dash+1:])
			if err != nil {
				return nil, apperrors.NewValidationError("invalid page range", token)
			}
			if lo < 1 {
				lo = 1
			}
			if hi > pageCount {
				hi = pageCount
			}
			for p := lo; p <= hi; p++ {
				selected[p] = struct{}{}
			}
		} else {
			p, err := strconv.Atoi(token)
			if err != nil {
				return nil, apperrors.NewValidationError("invalid page range", token)
			}
			selected[p] = struct{}{}
		}
	}

	pages := make([]int, 0, len(selected))
	for p := range selected {
		if p >= 1 && p <= pageCount {
			pages = append(pages, p)
		}
	}
	sort.Ints(pages)
	return pages, nil
}
