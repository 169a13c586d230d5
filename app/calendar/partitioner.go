package calendar

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackSlug names a feed whose category slugifies to nothing.
const FallbackSlug = "calendar"

// SlugCollisionError reports distinct category names that map to the same
// output document name. This is a configuration hazard in the source data,
// surfaced to the caller instead of silently overwriting a document.
type SlugCollisionError struct {
	Slug       string
	Categories []string
}

func (e *SlugCollisionError) Error() string {
	return fmt.Sprintf("categories %s collide on output name %q",
		strings.Join(e.Categories, " and "), e.Slug)
}

// Partitioner groups assembled events into per-category feeds plus one
// combined feed named combinedName.
type Partitioner struct {
	combinedName string
}

func NewPartitioner(combinedName string) *Partitioner {
	return &Partitioner{combinedName: combinedName}
}

// Run returns per-category feeds sorted by category name, followed by the
// combined feed carrying every event in original row order. Each feed owns a
// value copy of its membership; no event is shared mutably.
func (p *Partitioner) Run(events []Event) ([]Feed, error) {
	groups := make(map[string][]Event)
	var names []string
	for _, event := range events {
		if _, seen := groups[event.Category]; !seen {
			names = append(names, event.Category)
		}
		groups[event.Category] = append(groups[event.Category], event)
	}
	sort.Strings(names)

	combinedSlug := Slugify(p.combinedName)
	slugOwner := map[string]string{combinedSlug: p.combinedName}

	feeds := make([]Feed, 0, len(names)+1)
	for _, name := range names {
		slug := Slugify(name)
		if owner, taken := slugOwner[slug]; taken && owner != name {
			return nil, &SlugCollisionError{Slug: slug, Categories: []string{owner, name}}
		}
		slugOwner[slug] = name

		feeds = append(feeds, Feed{
			Name:   name,
			Slug:   slug,
			Events: groups[name],
		})
	}

	feeds = append(feeds, Feed{
		Name:     p.combinedName,
		Slug:     combinedSlug,
		Combined: true,
		Events:   append([]Event(nil), events...),
	})

	return feeds, nil
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify maps a category name to a filesystem- and URL-safe document name:
// diacritics folded, lowercased, alphanumerics kept, every other run of
// characters collapsed to a single dash, leading and trailing dashes
// trimmed. An empty result maps to FallbackSlug.
func Slugify(name string) string {
	folded, _, err := transform.String(diacriticStripper, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}

	slug := b.String()
	if slug == "" {
		return FallbackSlug
	}
	return slug
}
