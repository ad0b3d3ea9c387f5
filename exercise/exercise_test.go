package exercise

import "testing"

func TestCatalogIDsUnique(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for _, rec := range Catalog() {
		if rec.ID == "" {
			t.Errorf("record with empty ID: %q", rec.Prompt)
		}
		if seen[rec.ID] {
			t.Errorf("duplicate exercise ID %q", rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestCatalogRecordsComplete(t *testing.T) {
	t.Parallel()
	for _, rec := range Catalog() {
		if rec.Prompt == "" {
			t.Errorf("%s: empty prompt", rec.ID)
		}
		if rec.Hint == "" {
			t.Errorf("%s: empty hint", rec.ID)
		}
		if rec.ReferenceSQL == "" {
			t.Errorf("%s: empty reference SQL", rec.ID)
		}
		if len(rec.Tables) == 0 {
			t.Errorf("%s: no tables listed", rec.ID)
		}
		if len(rec.Concepts) == 0 {
			t.Errorf("%s: no concepts listed", rec.ID)
		}
	}
}

func TestStaticRepositoryStableOrder(t *testing.T) {
	t.Parallel()
	repo := NewStaticRepository(Catalog())
	first := repo.All()
	second := repo.All()
	if len(first) != len(second) {
		t.Fatalf("All() length changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("All() order changed at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestStaticRepositoryIsolation(t *testing.T) {
	t.Parallel()
	repo := NewStaticRepository(Catalog())
	got := repo.All()
	got[0], got[1] = got[1], got[0]
	fresh := repo.All()
	if fresh[0].ID == got[0].ID && fresh[1].ID == got[1].ID {
		t.Fatal("mutating All()'s result leaked into the repository")
	}
}
