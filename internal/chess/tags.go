package chess

// Tag is a single PGN tag pair.
type Tag struct {
	Name  string
	Value string
}

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// Tags holds game metadata. Roster tags are kept in roster order;
// any other tag is free-form and kept in the order it was first set.
// The zero value is ready to use.
type Tags struct {
	values map[string]string
	extra  []string
}

// NewTags creates an empty tag set.
func NewTags() *Tags {
	return &Tags{values: make(map[string]string)}
}

// Get returns a tag value, or empty string if not present.
func (t *Tags) Get(name string) string {
	return t.values[name]
}

// Lookup returns a tag value and whether it is present.
func (t *Tags) Lookup(name string) (string, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Has returns true if the tag is present.
func (t *Tags) Has(name string) bool {
	_, ok := t.values[name]
	return ok
}

// Set sets a tag value.
func (t *Tags) Set(name, value string) {
	if t.values == nil {
		t.values = make(map[string]string)
	}
	if _, seen := t.values[name]; !seen && !IsSevenTagRosterTag(name) {
		t.extra = append(t.extra, name)
	}
	t.values[name] = value
}

// Delete removes a tag.
func (t *Tags) Delete(name string) {
	if _, ok := t.values[name]; !ok {
		return
	}
	delete(t.values, name)
	for i, n := range t.extra {
		if n == name {
			t.extra = append(t.extra[:i:i], t.extra[i+1:]...)
			break
		}
	}
}

// Len returns the number of tags present.
func (t *Tags) Len() int {
	return len(t.values)
}

// Roster returns the roster tags that are present, in roster order.
func (t *Tags) Roster() []Tag {
	var tags []Tag
	for _, name := range SevenTagRoster {
		if v, ok := t.values[name]; ok {
			tags = append(tags, Tag{Name: name, Value: v})
		}
	}
	return tags
}

// Extra returns the free-form tags in insertion order.
func (t *Tags) Extra() []Tag {
	tags := make([]Tag, 0, len(t.extra))
	for _, name := range t.extra {
		tags = append(tags, Tag{Name: name, Value: t.values[name]})
	}
	return tags
}

// All returns the roster tags followed by the free-form tags.
func (t *Tags) All() []Tag {
	return append(t.Roster(), t.Extra()...)
}
