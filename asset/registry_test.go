package asset

import "testing"

func TestRegistryAddAndGet(t *testing.T) {
	r := NewRegistry()
	a := Asset{ID: NewID(), Kind: KindImage, Path: "bg.png"}
	if err := r.Add(a); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, ok := r.Get(a.ID)
	if !ok {
		t.Fatalf("Get: not found")
	}
	if got != a {
		t.Errorf("Get() = %v, want %v", got, a)
	}
}

func TestRegistryDuplicateID(t *testing.T) {
	r := NewRegistry()
	id := NewID()
	if err := r.Add(Asset{ID: id, Kind: KindFont}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := r.Add(Asset{ID: id, Kind: KindShader}); err == nil {
		t.Error("expected error on duplicate id")
	}
}

func TestRegistryHasMissing(t *testing.T) {
	r := NewRegistry()
	if r.Has(ID("missing")) {
		t.Error("expected Has to be false for unregistered id")
	}
}

func TestRegistryOrderPreserved(t *testing.T) {
	r := NewRegistry()
	ids := []ID{NewID(), NewID(), NewID()}
	for _, id := range ids {
		_ = r.Add(Asset{ID: id, Kind: KindLut})
	}
	all := r.All()
	if len(all) != 3 {
		t.Fatalf("All() len = %d, want 3", len(all))
	}
	for i, a := range all {
		if a.ID != ids[i] {
			t.Errorf("order mismatch at %d", i)
		}
	}
}
