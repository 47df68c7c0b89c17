package catalog

import "fmt"

var builtinCategories = []struct {
	spec  CategorySpec
	count int
}{
	{CategorySpec{"resources", "skill-chip", "Resource Systems", "Core materials and components", 10}, 14},
	{CategorySpec{"armaments", "skill-ranged", "Ranged Systems", "Advanced armaments and ranged tech", 24}, 12},
	{CategorySpec{"melee", "skill-melee", "Melee Systems", "Close-quarters equipment", 18}, 10},
	{CategorySpec{"radioactive", "skill-radioactive", "Radioactive Systems", "Hazardous materials and tech", 32}, 8},
	{CategorySpec{"mining", "skill-drill", "Mining Systems", "Extraction and drilling equipment", 15}, 12},
	{CategorySpec{"streetwear", "skill-character", "Streetwear Systems", "Apparel and character gear", 16}, 10},
}

// Builtin generates the six stock categories used when no catalog file is
// supplied. Icon names follow the texture convention <type><n>.
func Builtin() []Item {
	items := make([]Item, 0, len(builtinCategories))
	for _, cat := range builtinCategories {
		prefix := iconPrefix(cat.spec.TypeName)
		icons := make([]string, 0, cat.count)
		for i := 1; i <= cat.count; i++ {
			icons = append(icons, fmt.Sprintf("%s%d", prefix, i))
		}
		items = append(items, BuildCategory(cat.spec, icons))
	}
	return items
}

func iconPrefix(typeName string) string {
	switch typeName {
	case "resources":
		return "resource"
	case "armaments":
		return "arm"
	default:
		return typeName
	}
}
