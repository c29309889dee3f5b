package usecase

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/inventory-pro/backend/internal/domain"
)

// filterProducts applies the ANDed filter predicates without mutating the
// source slice. An empty search matches everything.
func filterProducts(products []domain.Product, f Filters) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Supplier), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Status != "" && domain.Classify(p) != domain.StockStatus(f.Status) {
			continue
		}

		filtered = append(filtered, p)
	}

	return filtered
}

// sortProducts orders a copy of products by the given key. Sorts are stable
// so ties keep their insertion order.
func sortProducts(products []domain.Product, key SortKey) []domain.Product {
	sorted := append([]domain.Product(nil), products...)

	switch key {
	case SortNameAsc:
		coll := nameCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return coll.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortNameDesc:
		coll := nameCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return coll.CompareString(sorted[j].Name, sorted[i].Name) < 0
		})
	case SortStockAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Stock < sorted[j].Stock
		})
	case SortStockDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[j].Stock < sorted[i].Stock
		})
	case SortValueDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[j].RetailValue().LessThan(sorted[i].RetailValue())
		})
	case SortMarginDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return lessByMarginDesc(sorted[i], sorted[j])
		})
	case SortStatus:
		sort.SliceStable(sorted, func(i, j int) bool {
			return domain.Classify(sorted[i]).AlertPriority() < domain.Classify(sorted[j]).AlertPriority()
		})
	}

	return sorted
}

// lessByMarginDesc orders higher margins first. Products without a
// computable margin (non-positive cost price) sort after everything else.
func lessByMarginDesc(a, b domain.Product) bool {
	ma, aok := a.Margin()
	mb, bok := b.Margin()

	switch {
	case aok && bok:
		return mb.LessThan(ma)
	case aok:
		return true
	default:
		return false
	}
}

// nameCollator builds the locale-aware, case-insensitive comparator for the
// name sorts. A Collator carries internal buffers, so each sort gets its own.
func nameCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}
