package catalog

import (
	"reflect"
	"testing"
)

func TestMergeFacetsDedupesWithinBatch(t *testing.T) {
	got := MergeFacets(nil, []string{"b", "a", "b"})
	want := []CategoryFacet{
		{ID: "b", Name: "b", Category: "b"},
		{ID: "a", Name: "a", Category: "a"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeFacets = %+v, want %+v", got, want)
	}
}

func TestMergeFacetsIdempotent(t *testing.T) {
	batch := []string{"asmr", "cosplay", "asmr"}
	once := MergeFacets(nil, batch)
	twice := MergeFacets(once, batch)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("re-merging the same batch changed facets: %+v vs %+v", once, twice)
	}
}

func TestMergeFacetsPreservesExistingOrder(t *testing.T) {
	existing := MergeFacets(nil, []string{"z", "a"})
	got := MergeFacets(existing, []string{"a", "m", "z", "b"})
	want := []CategoryFacet{
		{ID: "z", Name: "z", Category: "z"},
		{ID: "a", Name: "a", Category: "a"},
		{ID: "m", Name: "m", Category: "m"},
		{ID: "b", Name: "b", Category: "b"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeFacets = %+v, want %+v", got, want)
	}
}

func TestMergeFacetsCaseSensitive(t *testing.T) {
	// Exact string equality: "Design" and "design" are distinct facets.
	got := MergeFacets(nil, []string{"Design", "design"})
	if len(got) != 2 {
		t.Errorf("expected 2 facets, got %+v", got)
	}
}

func TestMergeFacetsDoesNotMutateInput(t *testing.T) {
	existing := MergeFacets(nil, []string{"a"})
	_ = MergeFacets(existing, []string{"b", "c"})
	if len(existing) != 1 {
		t.Errorf("existing slice mutated: %+v", existing)
	}
}
