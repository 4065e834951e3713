package model

// CollectionEntry is one item of a collection as listed before downloading
type CollectionEntry struct {
	Index int    `json:"index"` // 1-based position
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Collection represents a playlist with its entries
type Collection struct {
	ID      string             `json:"id"`
	URL     string             `json:"url"`
	Entries []*CollectionEntry `json:"entries"`
}

// AddEntry appends an entry and assigns its 1-based position
func (c *Collection) AddEntry(entry *CollectionEntry) {
	entry.Index = len(c.Entries) + 1
	c.Entries = append(c.Entries, entry)
}

// Len returns the number of entries
func (c *Collection) Len() int {
	return len(c.Entries)
}
