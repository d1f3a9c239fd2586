package model

// List pagination defaults
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// NormalizeListParams clamps limit and offset to sane ranges.
func NormalizeListParams(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
