package clean

import (
	"sort"
	"strings"

	"github.com/sells-group/listclean-cli/internal/model"
)

// FindDuplicates returns the indices (into the cleaned slice) of every
// record that shares an exact trimmed email, or an exact non-empty
// (first, last) name pair, with another record. Matching is exact only; no
// fuzzy equivalence.
func FindDuplicates(records []model.CleanedRecord) []int {
	byEmail := make(map[string][]int)
	byName := make(map[string][]int)

	for i, rec := range records {
		if e := strings.TrimSpace(rec.Email); e != "" {
			byEmail[e] = append(byEmail[e], i)
		}
		if rec.FirstName != "" && rec.LastName != "" {
			byName[rec.FirstName+"\x00"+rec.LastName] = append(byName[rec.FirstName+"\x00"+rec.LastName], i)
		}
	}

	seen := make(map[int]bool)
	var dupes []int
	mark := func(groups map[string][]int) {
		for _, idxs := range groups {
			if len(idxs) < 2 {
				continue
			}
			for _, i := range idxs {
				if !seen[i] {
					seen[i] = true
					dupes = append(dupes, i)
				}
			}
		}
	}
	mark(byEmail)
	mark(byName)

	sort.Ints(dupes)
	return dupes
}

// RemoveDuplicates keeps the first occurrence of each duplicate group and
// drops the rest. Returns the surviving records and the number removed.
func RemoveDuplicates(records []model.CleanedRecord) ([]model.CleanedRecord, int) {
	seenEmail := make(map[string]bool)
	seenName := make(map[string]bool)

	kept := make([]model.CleanedRecord, 0, len(records))
	removed := 0
	for _, rec := range records {
		emailKey := strings.TrimSpace(rec.Email)
		nameKey := ""
		if rec.FirstName != "" && rec.LastName != "" {
			nameKey = rec.FirstName + "\x00" + rec.LastName
		}

		if (emailKey != "" && seenEmail[emailKey]) || (nameKey != "" && seenName[nameKey]) {
			removed++
			continue
		}
		if emailKey != "" {
			seenEmail[emailKey] = true
		}
		if nameKey != "" {
			seenName[nameKey] = true
		}
		kept = append(kept, rec)
	}
	return kept, removed
}
