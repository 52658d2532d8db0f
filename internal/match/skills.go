package match

import (
	"encoding/json"
	"sort"
	"strings"
)

// SkillSet holds canonical skill tokens: lowercased, whitespace-trimmed,
// deduplicated.
type SkillSet map[string]struct{}

// NormalizeSkills converts a raw comma-separated skill string into a SkillSet.
// Each piece is trimmed and lowercased; duplicates collapse. Splitting an
// empty string yields a single empty token, so a blank field normalizes to
// {""} rather than an empty set; that token then scores like any other.
func NormalizeSkills(raw string) SkillSet {
	parts := strings.Split(raw, ",")
	set := make(SkillSet, len(parts))
	for _, p := range parts {
		set[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}
	return set
}

// SplitCanonical rebuilds a SkillSet from a canonical stored string. Stored
// tokens are already trimmed and lowercased, so this splits on commas only.
func SplitCanonical(s string) SkillSet {
	parts := strings.Split(s, ",")
	set := make(SkillSet, len(parts))
	for _, p := range parts {
		set[p] = struct{}{}
	}
	return set
}

// Contains reports whether the set holds the canonical token.
func (s SkillSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Sorted returns the tokens in ascending order.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for token := range s {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// Canonical renders the set as a sorted comma-joined string. Round-trips
// through SplitCanonical unchanged.
func (s SkillSet) Canonical() string {
	return strings.Join(s.Sorted(), ",")
}

// MarshalJSON renders the set as a sorted array of tokens.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}
