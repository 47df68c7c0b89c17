package catalog

import "testing"

func TestBuiltinCatalog(t *testing.T) {
	items := Builtin()
	if len(items) != 6 {
		t.Fatalf("%d roots, want 6", len(items))
	}
	if items[0].ID != "nav_resources_root" {
		t.Errorf("first root = %q", items[0].ID)
	}

	leaves := Leaves(items)
	want := 14 + 12 + 10 + 8 + 12 + 10
	if len(leaves) != want {
		t.Fatalf("%d leaves, want %d", len(leaves), want)
	}
	for _, leaf := range leaves {
		if leaf.Cost <= 0 {
			t.Errorf("leaf %s has no cost", leaf.ID)
		}
		if leaf.Icon == "" {
			t.Errorf("leaf %s has no icon", leaf.ID)
		}
	}
}
