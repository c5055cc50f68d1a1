package service

import (
	"sort"
	"strconv"

	"github.com/atelier-works/portfolio-backend/internal/store"
)

// sortByYearDesc orders documents descending by their integer-coerced
// "year" field, in place. A missing year counts as 0. If any present
// year fails to coerce, the slice is left in its original order: sorting
// is presentation polish, never a hard failure. The sort is stable, so
// equal years keep their retrieval order.
func sortByYearDesc(docs []store.Document) {
	type keyed struct {
		doc  store.Document
		year int
	}

	items := make([]keyed, len(docs))
	for i, d := range docs {
		year, ok := yearKey(d)
		if !ok {
			return
		}
		items[i] = keyed{doc: d, year: year}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].year > items[j].year
	})

	for i := range items {
		docs[i] = items[i].doc
	}
}

// yearKey coerces a document's year to an int. Absent counts as 0;
// anything present but non-numeric reports failure.
func yearKey(doc store.Document) (int, bool) {
	raw, ok := doc["year"]
	if !ok {
		return 0, true
	}

	switch v := raw.(type) {
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
