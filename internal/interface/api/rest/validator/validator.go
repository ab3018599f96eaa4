package validator

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"files-manager-api/internal/domain/file"
)

// MaxPage is the last page whose offset still fits in an int.
const MaxPage = math.MaxInt / file.PageSize

// ParsePage reads a zero-based page number. Anything unparsable or negative
// is 0; pages past MaxPage are clamped to it.
func ParsePage(page string) int {
	p, err := strconv.Atoi(strings.TrimSpace(page))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && p > 0 {
			return MaxPage
		}
		return 0
	}
	if p < 0 {
		return 0
	}
	if p > MaxPage {
		return MaxPage
	}

	return p
}
