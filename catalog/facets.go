package catalog

// MergeFacets appends one facet for each distinct category value in the new
// batch (first-seen order) that is not already present in existing. Existing
// facets are never removed, reordered, or renamed. Equality is raw
// case-sensitive string match; "Design" and "design" stay distinct facets.
func MergeFacets(existing []CategoryFacet, categories []string) []CategoryFacet {
	seen := make(map[string]struct{}, len(existing))
	for _, f := range existing {
		seen[f.Category] = struct{}{}
	}

	merged := make([]CategoryFacet, len(existing), len(existing)+len(categories))
	copy(merged, existing)

	for _, c := range categories {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		merged = append(merged, CategoryFacet{ID: c, Name: c, Category: c})
	}
	return merged
}

// ItemCategories extracts the category values of a result batch in order.
func ItemCategories(items []ContentItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Category
	}
	return out
}
