package clean

import (
	"math/rand"
	"sort"

	"github.com/sells-group/listclean-cli/internal/model"
)

// Split partitions record indices into at most maxLists buckets,
// round-robin by company so one company's contacts are spread across the
// output lists. Per-company record order is shuffled with the injected
// random source so tests can pin a seed. The realized bucket count is
// min(maxLists, largest company size): a single dominant company cannot
// force more non-empty buckets than it needs.
func Split(records []model.CleanedRecord, maxLists int, rng *rand.Rand) [][]int {
	if len(records) == 0 || maxLists <= 0 {
		return nil
	}

	byCompany := make(map[string][]int)
	var companies []string
	for i, rec := range records {
		key := rec.Company
		if _, ok := byCompany[key]; !ok {
			companies = append(companies, key)
		}
		byCompany[key] = append(byCompany[key], i)
	}
	sort.Strings(companies)

	largest := 0
	for _, idxs := range byCompany {
		if len(idxs) > largest {
			largest = len(idxs)
		}
	}
	n := maxLists
	if largest < n {
		n = largest
	}
	if n < 1 {
		n = 1
	}

	buckets := make([][]int, n)
	cursor := 0
	for _, company := range companies {
		idxs := byCompany[company]
		rng.Shuffle(len(idxs), func(a, b int) {
			idxs[a], idxs[b] = idxs[b], idxs[a]
		})
		for _, idx := range idxs {
			buckets[cursor%n] = append(buckets[cursor%n], idx)
			cursor++
		}
	}

	for _, b := range buckets {
		sort.Ints(b)
	}
	return buckets
}
