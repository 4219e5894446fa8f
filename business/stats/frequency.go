package stats

import "familyGrocery/domain"

// MostFrequentProducts computes the mode(s) of a list of product names: every
// name whose occurrence count equals the maximum observed count. Names are
// compared exactly (case-sensitive). Ties are all returned, ordered by first
// occurrence in the input so the result is deterministic. An empty input
// yields an empty result.
func MostFrequentProducts(productNames []string) []domain.ProductCount {
	if len(productNames) == 0 {
		return []domain.ProductCount{}
	}

	counts := make(map[string]int, len(productNames))
	order := make([]string, 0, len(productNames))

	maxCount := 0
	for _, name := range productNames {
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
		if counts[name] > maxCount {
			maxCount = counts[name]
		}
	}

	top := make([]domain.ProductCount, 0, 1)
	for _, name := range order {
		if counts[name] == maxCount {
			top = append(top, domain.ProductCount{Name: name, Count: counts[name]})
		}
	}

	return top
}
