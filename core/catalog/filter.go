package catalog

import "fjapps-store/core/domain"

// Filter removes every entry whose app id is in exclusions. The remaining
// entries keep their relative order. With an empty set the input slice is
// returned as is.
func Filter(entries []domain.CatalogEntry, exclusions domain.ExclusionSet) []domain.CatalogEntry {
	if exclusions.Len() == 0 {
		return entries
	}

	kept := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if exclusions.Contains(e.AppID) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
