package corpus

import "strings"

// Override replaces the extracted fingerprint of one document in one dataset.
type Override struct {
	Dataset string `toml:"dataset"`
	ID      string `toml:"id"`
	Text    string `toml:"text"`
}

type overrideKey struct {
	dataset string
	id      string
}

// OverrideTable looks up fingerprint corrections by (dataset, id).
type OverrideTable struct {
	entries map[overrideKey]string
}

// NewOverrideTable indexes overrides. Later entries win over earlier ones for
// the same key.
func NewOverrideTable(overrides []Override) *OverrideTable {
	t := &OverrideTable{entries: make(map[overrideKey]string, len(overrides))}
	for _, o := range overrides {
		key := overrideKey{dataset: strings.TrimSpace(o.Dataset), id: strings.TrimSpace(o.ID)}
		if key.id == "" {
			continue
		}
		t.entries[key] = o.Text
	}
	return t
}

// Lookup returns the replacement text for id in dataset.
func (t *OverrideTable) Lookup(dataset, id string) (string, bool) {
	if t == nil {
		return "", false
	}
	text, ok := t.entries[overrideKey{dataset: dataset, id: id}]
	return text, ok
}

// Len returns the number of distinct override keys.
func (t *OverrideTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Apply rewrites docs in place and returns how many were changed.
func (t *OverrideTable) Apply(dataset string, docs []Document) int {
	if t.Len() == 0 {
		return 0
	}
	applied := 0
	for i := range docs {
		if text, ok := t.Lookup(dataset, docs[i].ID); ok {
			docs[i].Text = text
			applied++
		}
	}
	return applied
}
