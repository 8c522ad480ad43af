package services

import (
	"github.com/everestllcweb-png/backend/database"
)

// VisibilityPolicy decides which records a caller may read. Flag names the
// boolean column that must be true for non-admin callers; an empty Flag
// means the collection has no public subset to filter.
type VisibilityPolicy struct {
	Flag string
}

// ResolveQuery returns the filter to use for a read. Admins get base as is.
// base is never modified.
func (p VisibilityPolicy) ResolveQuery(hasAdminSession bool, base database.Filter) database.Filter {
	filter := make(database.Filter, len(base)+1)
	for column, value := range base {
		filter[column] = value
	}
	if !hasAdminSession && p.Flag != "" {
		filter[p.Flag] = true
	}
	return filter
}
