package catalog

import (
	"fmt"
	"strings"
)

// Dial pages hold six slices; pages past the first give one slice to the
// "more" node, so a full chain page carries five leaves.
const pageSize = 6

// CategorySpec describes one root of the generated item tree.
type CategorySpec struct {
	TypeName    string
	RootIcon    string
	DisplayName string
	Description string
	BaseCost    int
}

// BuildCategory wraps a flat ordered icon list into a navigable root whose
// children are paginated with trailing "more" nodes.
func BuildCategory(spec CategorySpec, icons []string) Item {
	return Item{
		ID:          fmt.Sprintf("nav_%s_root", spec.TypeName),
		Name:        spec.DisplayName,
		Icon:        spec.RootIcon,
		Description: spec.Description,
		Layers: []Layer{
			{Texture: spec.RootIcon, Depth: 3},
			{Texture: "frame", Depth: 2},
		},
		Children: buildChain(spec, icons, 1, 1),
	}
}

// buildChain paginates icons into pages of pageSize. When more than one page
// is needed the "more" branch sits in the second position of the page, so a
// page shows the first leaf, the way down, then the rest of the page.
func buildChain(spec CategorySpec, icons []string, startIndex, level int) []Item {
	if len(icons) <= pageSize {
		out := make([]Item, 0, len(icons))
		for i, icon := range icons {
			out = append(out, makeLeaf(spec, icon, startIndex+i))
		}
		return out
	}

	current := icons[:pageSize-1]
	next := buildChain(spec, icons[pageSize-1:], startIndex+pageSize-1, level+1)

	out := make([]Item, 0, pageSize)
	out = append(out, makeLeaf(spec, current[0], startIndex))
	out = append(out, Item{
		ID:          fmt.Sprintf("nav_%s_down_%d", spec.TypeName, level),
		Name:        fmt.Sprintf("More %s", title(spec.TypeName)),
		Icon:        "skill-down",
		Description: fmt.Sprintf("More %s items", spec.TypeName),
		Layers: []Layer{
			{Texture: "skill-down", Depth: 3},
			{Texture: "frame", Depth: 2},
		},
		Children: next,
	})
	for i := 1; i < len(current); i++ {
		out = append(out, makeLeaf(spec, current[i], startIndex+i))
	}
	return out
}

func makeLeaf(spec CategorySpec, icon string, index int) Item {
	return Item{
		ID:   fmt.Sprintf("item_%s_%03d", spec.TypeName, index),
		Name: icon,
		Icon: icon,
		Type: spec.TypeName,
		Cost: spec.BaseCost + (index-1)%6,
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
