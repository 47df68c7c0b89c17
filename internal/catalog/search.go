package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is one search hit with its score in (0, 1].
type Match struct {
	Item  Item
	Score float64
}

// Search scores every leaf against the query and returns the best matches,
// highest score first. Exact name/id hits outrank prefix hits, which outrank
// fuzzy hits within a length-bounded edit distance.
func Search(items []Item, query string, limit int) []Match {
	q := normalizeKey(query)
	if q == "" || limit <= 0 {
		return nil
	}

	leaves := Leaves(items)
	matches := make([]Match, 0, limit)
	for _, leaf := range leaves {
		score := scoreLeaf(leaf, q)
		if score <= 0 {
			continue
		}
		matches = append(matches, Match{Item: leaf, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Item.ID < matches[j].Item.ID
		}
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func scoreLeaf(leaf Item, q string) float64 {
	best := 0.0
	for _, candidate := range []string{leaf.DisplayName(), leaf.ID, leaf.IconKey()} {
		c := normalizeKey(candidate)
		if c == "" {
			continue
		}
		s := scoreCandidate(c, q)
		if s > best {
			best = s
		}
	}
	return best
}

func scoreCandidate(candidate, q string) float64 {
	if candidate == q {
		return 1.0
	}
	if strings.HasPrefix(candidate, q) && len(q) >= 2 {
		return 0.9
	}
	if len(q) < 3 {
		return 0
	}
	dist := levenshtein.ComputeDistance(q, candidate)
	if dist > distanceLimit(len(candidate)) {
		return 0
	}
	score := 0.72 - 0.08*float64(dist)
	if strings.Contains(candidate, q) {
		score += 0.04
	}
	return score
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normalizeKey(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '-' || r == '_' || r == '/' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
