package persistence

import (
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/paylog/backend/internal/domain/shared"
)

// orderColumn only admits plain column names, keeping user-supplied
// order_by out of raw SQL
var orderColumn = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// applyFilter applies search, ordering and pagination to a query.
// searchColumns are ILIKE-matched against filter.Search.
func applyFilter(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	query = applySearch(query, filter, searchColumns...)

	orderBy := "created_at"
	if filter.OrderBy != "" && orderColumn.MatchString(filter.OrderBy) {
		orderBy = filter.OrderBy
	}
	orderDir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		orderDir = "DESC"
	}
	query = query.Order(orderBy + " " + orderDir)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	return query
}

// applySearch applies only the search clause, for count queries
func applySearch(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	if filter.Search != "" && len(searchColumns) > 0 {
		pattern := "%" + filter.Search + "%"
		clauses := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, col := range searchColumns {
			clauses[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}
	return query
}
