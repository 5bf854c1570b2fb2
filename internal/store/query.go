package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderBySavings   = "savings"
	orderByPrice     = "price"
	orderByCreatedAt = "created_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderBySavings:   "savings_usd DESC",
	orderByPrice:     "converted_price_usd ASC",
	orderByCreatedAt: "created_at DESC",
}

const defaultOrderBy = "created_at DESC"

const baseResultsSelect = `SELECT id, scan_run_id, catalog_entry_id, catalog_name, catalog_price_usd,
	image_url, animation_url,
	candidate_title, candidate_price, candidate_currency,
	converted_price_usd, is_sold_out, cheaper,
	savings_usd, savings_pct, created_at
FROM match_results`

const countResultsSelect = "SELECT COUNT(*) FROM match_results"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a match
// result query. It returns two SQL strings (one for the data query, one for
// the count query) and the positional parameters.
func (q *ResultQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.ScanRunID != nil {
		conditions = append(conditions, fmt.Sprintf("scan_run_id = $%d", paramIdx))
		args = append(args, *q.ScanRunID)
		paramIdx++
	}

	if q.CheaperOnly {
		conditions = append(conditions, "cheaper")
	}

	if q.SoldOut != nil {
		conditions = append(conditions, fmt.Sprintf("is_sold_out = $%d", paramIdx))
		args = append(args, *q.SoldOut)
		paramIdx++
	}

	if q.MinSavingsUSD != nil {
		conditions = append(conditions, fmt.Sprintf("savings_usd >= $%d", paramIdx))
		args = append(args, *q.MinSavingsUSD)
		paramIdx++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Order by
	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	// Limit
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseResultsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countResultsSelect + whereClause

	return dataSQL, countSQL, args
}
