package queries

import (
	"math"

	"commerce/internal/pkg/errs"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// normalizePage applies the default when the caller passed zero and rejects
// negative values.
func normalizePage(page int) (int, error) {
	if page == 0 {
		return defaultPage, nil
	}
	if page < 1 {
		return 0, errs.NewValueIsOutOfRangeError("page", page, 1, math.MaxInt)
	}
	return page, nil
}

// normalizePageSize applies the default when the caller passed zero and
// clamps the request to the supported window.
func normalizePageSize(pageSize int) (int, error) {
	if pageSize == 0 {
		return defaultPageSize, nil
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}
	return pageSize, nil
}
