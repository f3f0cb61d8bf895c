package match

import (
	"sort"
	"testing"

	"crossmap/typemeta"
)

func TestRankProperties(t *testing.T) {
	intT := typemeta.TypeFor[int]()
	int64T := typemeta.TypeFor[int64]()
	stringT := typemeta.TypeFor[string]()

	props := []typemeta.Property{
		{Name: "CustomerID", Exported: true, Type: int64T},
		{Name: "customer_id", Exported: true, Type: intT},
		{Name: "CustomerName", Exported: true, Type: stringT},
		{Name: "ID", Exported: true, Type: int64T},
		{Name: "secret", Exported: false, Type: int64T},
	}

	candidates := RankProperties("CustomerID", int64T, props)

	// Unexported properties are filtered out.
	if len(candidates) != 4 {
		t.Fatalf("expected 4 candidates, got %d", len(candidates))
	}

	if candidates[0].Property.Name != "CustomerID" {
		t.Errorf("best match = %q, want CustomerID", candidates[0].Property.Name)
	}

	if candidates[0].CombinedScore < 0.9 {
		t.Errorf("exact match scored %f, want >= 0.9", candidates[0].CombinedScore)
	}

	// Same name after normalization ranks second.
	if candidates[1].Property.Name != "customer_id" {
		t.Errorf("second match = %q, want customer_id", candidates[1].Property.Name)
	}

	if candidates[1].NormalizedName != candidates[1].NormalizedTarget {
		t.Errorf("normalized forms differ: %q vs %q",
			candidates[1].NormalizedName, candidates[1].NormalizedTarget)
	}
}

func TestCandidateListSorting(t *testing.T) {
	list := CandidateList{
		{Property: typemeta.Property{Name: "B"}, CombinedScore: 0.5},
		{Property: typemeta.Property{Name: "A"}, CombinedScore: 0.5},
		{Property: typemeta.Property{Name: "C"}, CombinedScore: 0.9},
	}

	sort.Sort(list)

	// Score first, name as the deterministic tie-breaker.
	got := []string{list[0].Property.Name, list[1].Property.Name, list[2].Property.Name}
	want := []string{"C", "A", "B"}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestCandidateListOps(t *testing.T) {
	list := CandidateList{
		{Property: typemeta.Property{Name: "A"}, CombinedScore: 0.9},
		{Property: typemeta.Property{Name: "B"}, CombinedScore: 0.85},
		{Property: typemeta.Property{Name: "C"}, CombinedScore: 0.3},
	}

	if got := list.Top(2); len(got) != 2 {
		t.Errorf("Top(2) returned %d candidates", len(got))
	}

	if got := list.Top(10); len(got) != 3 {
		t.Errorf("Top(10) returned %d candidates", len(got))
	}

	if best := list.Best(); best == nil || best.Property.Name != "A" {
		t.Errorf("Best() = %v, want A", best)
	}

	if !list.IsAmbiguous(0.1) {
		t.Error("top two within 0.05 should be ambiguous at 0.1")
	}

	if list.IsAmbiguous(0.01) {
		t.Error("gap of 0.05 is not ambiguous at 0.01")
	}

	if got := list.AboveThreshold(0.5); len(got) != 2 {
		t.Errorf("AboveThreshold(0.5) returned %d candidates", len(got))
	}

	var empty CandidateList

	if empty.Best() != nil {
		t.Error("empty list has no best candidate")
	}

	if empty.IsAmbiguous(0.5) {
		t.Error("empty list is not ambiguous")
	}
}

func TestHighConfidence(t *testing.T) {
	strong := CandidateList{
		{
			Property:      typemeta.Property{Name: "A"},
			CombinedScore: 0.95,
			TypeCompat:    CompatibilityResult{Compatibility: Identical},
		},
		{Property: typemeta.Property{Name: "B"}, CombinedScore: 0.3},
	}

	if c := strong.HighConfidence(DefaultMinScore, DefaultMinGap); c == nil || c.Property.Name != "A" {
		t.Errorf("clear winner not accepted: %v", c)
	}

	ambiguous := CandidateList{
		{Property: typemeta.Property{Name: "A"}, CombinedScore: 0.9, TypeCompat: CompatibilityResult{Compatibility: Identical}},
		{Property: typemeta.Property{Name: "B"}, CombinedScore: 0.87, TypeCompat: CompatibilityResult{Compatibility: Identical}},
	}

	if c := ambiguous.HighConfidence(DefaultMinScore, DefaultMinGap); c != nil {
		t.Errorf("ambiguous pair accepted: %v", c)
	}

	weak := CandidateList{
		{Property: typemeta.Property{Name: "A"}, CombinedScore: 0.5, TypeCompat: CompatibilityResult{Compatibility: Identical}},
	}

	if c := weak.HighConfidence(DefaultMinScore, DefaultMinGap); c != nil {
		t.Errorf("weak score accepted: %v", c)
	}

	incompatible := CandidateList{
		{Property: typemeta.Property{Name: "A"}, CombinedScore: 0.95, TypeCompat: CompatibilityResult{Compatibility: Incompatible}},
	}

	if c := incompatible.HighConfidence(DefaultMinScore, DefaultMinGap); c != nil {
		t.Errorf("incompatible candidate accepted: %v", c)
	}

	var empty CandidateList

	if c := empty.HighConfidence(DefaultMinScore, DefaultMinGap); c != nil {
		t.Errorf("empty list produced a candidate: %v", c)
	}
}
