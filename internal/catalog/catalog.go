package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Item is one node of the selectable item tree. A leaf has no children and
// can be placed or repaired; a branch only navigates deeper.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type,omitempty"`
	Cost        int     `json:"cost,omitempty"`
	Children    []Item  `json:"children,omitempty"`
	Layers      []Layer `json:"layers,omitempty"`
}

// Layer is a stacked texture reference used by composite dial icons.
type Layer struct {
	Texture string `json:"texture"`
	Depth   int    `json:"depth"`
}

type file struct {
	Items []Item `json:"items"`
}

func (it Item) IsLeaf() bool {
	return len(it.Children) == 0
}

// IconKey is the texture key a slot or puzzle stores for this item.
func (it Item) IconKey() string {
	if it.Icon != "" {
		return it.Icon
	}
	return it.ID
}

// DisplayName prefers the human name and falls back to the id.
func (it Item) DisplayName() string {
	if strings.TrimSpace(it.Name) != "" {
		return it.Name
	}
	return it.ID
}

// Load reads an item tree from a JSON file shaped {"items": [...]}.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]Item, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("parse catalog: no items")
	}
	return f.Items, nil
}

// Leaves collects every terminal item depth-first, in tree order.
func Leaves(items []Item) []Item {
	var out []Item
	var walk func([]Item)
	walk = func(nodes []Item) {
		for _, n := range nodes {
			if len(n.Children) > 0 {
				walk(n.Children)
				continue
			}
			out = append(out, n)
		}
	}
	walk(items)
	return out
}

// FindRoot returns the top-level item with the given id.
func FindRoot(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
