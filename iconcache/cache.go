package iconcache

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/svgicon/cssom"
	"github.com/npillmayer/svgicon/maybe"
)

// ErrCodeAlreadySet is returned when trying to overwrite the code of an entry.
var ErrCodeAlreadySet = errors.New("icon code already set")

// Media is the media context of an icon request: the parameter text of an
// enclosing @media at-rule, or NoMedia.
type Media struct {
	Query       string // media query text, verbatim
	Conditional bool   // false for NoMedia
}

// NoMedia is the media context of requests outside of any @media at-rule.
var NoMedia = Media{}

// InMedia returns the media context for a media query text.
func InMedia(query string) Media {
	return Media{Query: query, Conditional: true}
}

func (m Media) String() string {
	if !m.Conditional {
		return "<no media>"
	}
	return "@media " + m.Query
}

// Entry is a cached, rendered icon together with all the selectors which
// requested it.
type Entry struct {
	Name      string              // icon name
	Color     maybe.Maybe[string] // fill color, if any
	Media     Media               // media context shared by all instances
	Code      string              // CSS background-image value; written once
	Instances []string            // selectors in first-seen order; append-only
}

// Selector returns the instances joined as a selector list.
func (e *Entry) Selector() string {
	return strings.Join(e.Instances, ", ")
}

// SetCode sets the rendered code of an entry. Code is written at most once;
// setting it again returns ErrCodeAlreadySet.
func (e *Entry) SetCode(code string) error {
	if e.Code != "" {
		return ErrCodeAlreadySet
	}
	e.Code = code
	return nil
}

func (e *Entry) String() string {
	return fmt.Sprintf("icon(%s, %v, %s) × %d", e.Name, e.Color, e.Media, len(e.Instances))
}

type key struct {
	name     string
	color    string
	hasColor bool
	media    Media
}

func keyFor(name string, color maybe.Maybe[string], media Media) key {
	k := key{name: name, media: media}
	if color != nil {
		k.color, k.hasColor = color.Get()
	}
	return k
}

// Cache holds one entry per distinct (name, color, media) identity.
// The zero value is not usable, create caches with New.
type Cache struct {
	entries []*Entry
	index   map[key]*Entry
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{index: make(map[key]*Entry)}
}

// Has tests if there is an entry for an identity. Names, colors and media
// queries are compared verbatim.
func (c *Cache) Has(name string, color maybe.Maybe[string], media Media) bool {
	_, ok := c.index[keyFor(name, color, media)]
	return ok
}

// Entry returns the entry for an identity.
func (c *Cache) Entry(name string, color maybe.Maybe[string], media Media) (*Entry, bool) {
	e, ok := c.index[keyFor(name, color, media)]
	return e, ok
}

// Add registers a request. For a new identity an entry is created, holding
// code (which may be empty if rendering is still pending, see Entry.SetCode).
// For a known identity the code of the existing entry is kept, unless it has
// not been set yet.
//
// In both cases the selector text is split into single selectors, which
// are appended to the entry's instances. Selectors are not deduplicated.
func (c *Cache) Add(name string, color maybe.Maybe[string], code, selector string, media Media) *Entry {
	k := keyFor(name, color, media)
	e, ok := c.index[k]
	if !ok {
		if color == nil {
			color = maybe.Nothing[string]()
		}
		e = &Entry{Name: name, Color: color, Media: media}
		c.index[k] = e
		c.entries = append(c.entries, e)
		tracer().Debugf("new icon identity %s", e)
	}
	if code != "" && e.SetCode(code) != nil {
		tracer().Debugf("keeping code of %s", e)
	}
	e.Instances = append(e.Instances, cssom.SplitSelectors(selector)...)
	return e
}

// Entries returns all entries in insertion order, i.e. in the order their
// identities have first been seen.
func (c *Cache) Entries() []*Entry {
	entries := make([]*Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// Partition splits the entries into those without a media context and
// those with one, each in insertion order.
func (c *Cache) Partition() (unconditional, conditional []*Entry) {
	for _, e := range c.entries {
		if e.Media.Conditional {
			conditional = append(conditional, e)
		} else {
			unconditional = append(unconditional, e)
		}
	}
	return
}

// Len returns the number of distinct identities.
func (c *Cache) Len() int {
	return len(c.entries)
}
