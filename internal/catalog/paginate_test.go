package catalog

import (
	"fmt"
	"testing"
)

func iconList(n int) []string {
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, fmt.Sprintf("resource%d", i))
	}
	return out
}

func resourceSpec() CategorySpec {
	return CategorySpec{
		TypeName:    "resources",
		RootIcon:    "skill-chip",
		DisplayName: "Resource Systems",
		Description: "Core materials and components",
		BaseCost:    10,
	}
}

func TestBuildCategoryFlatWhenOnePage(t *testing.T) {
	root := BuildCategory(resourceSpec(), iconList(6))
	if root.ID != "nav_resources_root" {
		t.Fatalf("root id = %q", root.ID)
	}
	if len(root.Children) != 6 {
		t.Fatalf("%d children, want 6 flat leaves", len(root.Children))
	}
	for i, child := range root.Children {
		if !child.IsLeaf() {
			t.Errorf("child %d is not a leaf: %+v", i, child)
		}
	}
	if root.Children[2].ID != "item_resources_003" {
		t.Errorf("leaf id = %q, want item_resources_003", root.Children[2].ID)
	}
}

func TestBuildCategoryChainsOverflow(t *testing.T) {
	root := BuildCategory(resourceSpec(), iconList(13))

	// First page: one leaf, the "more" branch second, then four leaves.
	page := root.Children
	if len(page) != 6 {
		t.Fatalf("first page has %d entries, want 6", len(page))
	}
	if !page[0].IsLeaf() || page[0].ID != "item_resources_001" {
		t.Fatalf("page[0] = %+v, want leaf 001", page[0])
	}
	down := page[1]
	if down.ID != "nav_resources_down_1" || down.IsLeaf() {
		t.Fatalf("page[1] = %+v, want nav-down branch", down)
	}
	for i := 2; i < 6; i++ {
		wantID := fmt.Sprintf("item_resources_%03d", i)
		if page[i].ID != wantID {
			t.Errorf("page[%d] = %q, want %q", i, page[i].ID, wantID)
		}
	}

	// Second page: remaining 8 icons overflow again.
	page2 := down.Children
	if len(page2) != 6 {
		t.Fatalf("second page has %d entries, want 6", len(page2))
	}
	if page2[0].ID != "item_resources_006" {
		t.Errorf("page2[0] = %q, want item_resources_006", page2[0].ID)
	}
	if page2[1].ID != "nav_resources_down_2" {
		t.Errorf("page2[1] = %q, want nav_resources_down_2", page2[1].ID)
	}

	// Third page: final 3 icons, flat.
	page3 := page2[1].Children
	if len(page3) != 3 {
		t.Fatalf("third page has %d entries, want 3 flat leaves", len(page3))
	}
	if page3[2].ID != "item_resources_013" {
		t.Errorf("last leaf = %q, want item_resources_013", page3[2].ID)
	}

	// Every icon appears exactly once across the chain.
	leaves := Leaves([]Item{root})
	if len(leaves) != 13 {
		t.Fatalf("chain holds %d leaves, want 13", len(leaves))
	}
}

func TestBuildCategoryCosts(t *testing.T) {
	root := BuildCategory(resourceSpec(), iconList(8))
	for _, leaf := range Leaves([]Item{root}) {
		var index int
		if _, err := fmt.Sscanf(leaf.ID, "item_resources_%03d", &index); err != nil {
			t.Fatalf("unexpected leaf id %q", leaf.ID)
		}
		want := 10 + (index-1)%6
		if leaf.Cost != want {
			t.Errorf("leaf %s cost = %d, want %d", leaf.ID, leaf.Cost, want)
		}
	}
}
