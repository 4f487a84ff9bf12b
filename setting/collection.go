package setting

import "sort"

// Collection merges settings from many sources with set semantics on Key.
// When two settings share a key the first one added wins; later ones are
// counted as duplicates and dropped. Callers that need a stable winner must
// add sources in a stable order.
type Collection struct {
	byKey      map[string]*Setting
	order      []string
	duplicates int
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{byKey: make(map[string]*Setting)}
}

// Add merges settings into the collection.
func (c *Collection) Add(settings ...*Setting) {
	for _, s := range settings {
		if s == nil {
			continue
		}
		if _, exists := c.byKey[s.Key]; exists {
			c.duplicates++
			continue
		}
		c.byKey[s.Key] = s
		c.order = append(c.order, s.Key)
	}
}

// Get returns the setting stored under key.
func (c *Collection) Get(key string) (*Setting, bool) {
	s, ok := c.byKey[key]
	return s, ok
}

// Len returns the number of distinct keys.
func (c *Collection) Len() int {
	return len(c.byKey)
}

// Duplicates returns how many records were collapsed into an existing key.
func (c *Collection) Duplicates() int {
	return c.duplicates
}

// Sorted returns the settings ordered by key using byte-wise comparison.
func (c *Collection) Sorted() []*Setting {
	out := make([]*Setting, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.byKey[key])
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}
