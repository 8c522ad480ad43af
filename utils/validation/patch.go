package validation

// SetString copies the sanitized value of src into dst when src was sent
func SetString(dst *string, src *string) {
	if src != nil {
		*dst = SanitizeString(*src)
	}
}

// SetValue copies *src into dst when src was sent
func SetValue[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// SetMirrored applies a pair of fields that hold the same value under two names.
// When only one side was sent it is written to both, so the other side cannot go stale.
func SetMirrored(current, legacy *string, srcCurrent, srcLegacy *string) {
	switch {
	case srcCurrent != nil && srcLegacy == nil:
		SetString(current, srcCurrent)
		*legacy = *current
	case srcLegacy != nil && srcCurrent == nil:
		SetString(legacy, srcLegacy)
		*current = *legacy
	default:
		SetString(current, srcCurrent)
		SetString(legacy, srcLegacy)
	}
}
