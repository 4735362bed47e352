package service

import (
	"sort"
	"strings"

	"lumen/internal/models"
)

// Pure aggregation over the ordered document collection. Everything here
// recomputes from scratch per call: no caches, no hidden state, safe for
// concurrent readers.

// TotalSpent sums document totals. Zero for an empty collection.
func TotalSpent(docs []*models.Document) float64 {
	var total float64
	for _, doc := range docs {
		total += doc.Total
	}
	return total
}

// AverageSpending is the mean document total, zero for an empty collection.
func AverageSpending(docs []*models.Document) float64 {
	if len(docs) == 0 {
		return 0
	}
	return TotalSpent(docs) / float64(len(docs))
}

// SpendingByCategory accumulates item prices keyed by category. Values are
// exact sums; rounding happens at display time only.
func SpendingByCategory(docs []*models.Document) map[string]float64 {
	categoryTotals := make(map[string]float64)
	for _, doc := range docs {
		for _, item := range doc.Items {
			categoryTotals[item.Category] += item.Price
		}
	}
	return categoryTotals
}

// FindItemsByName returns every item whose name contains term,
// case-insensitively, in document-then-item order. The empty term matches
// every item. Never returns nil.
func FindItemsByName(docs []*models.Document, term string) []models.Item {
	results := []models.Item{}
	lowerTerm := strings.ToLower(term)
	for _, doc := range docs {
		for _, item := range doc.Items {
			if strings.Contains(strings.ToLower(item.Name), lowerTerm) {
				results = append(results, item)
			}
		}
	}
	return results
}

// CategoryAmount pairs a category with its summed spend.
type CategoryAmount struct {
	Category string
	Amount   float64
}

// CategoriesByFirstSeen returns category totals in the order categories
// first appear walking documents then items. This encounter order is the
// tie-break authority everywhere categories are ranked or matched.
func CategoriesByFirstSeen(docs []*models.Document) []CategoryAmount {
	index := make(map[string]int)
	var categories []CategoryAmount
	for _, doc := range docs {
		for _, item := range doc.Items {
			i, ok := index[item.Category]
			if !ok {
				i = len(categories)
				index[item.Category] = i
				categories = append(categories, CategoryAmount{Category: item.Category})
			}
			categories[i].Amount += item.Price
		}
	}
	return categories
}

// SortedCategories orders category totals by amount descending. The sort
// is stable: equal amounts keep their incoming (first-encountered) order.
// The input slice is not modified.
func SortedCategories(categories []CategoryAmount) []CategoryAmount {
	sorted := make([]CategoryAmount, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})
	return sorted
}
