// Package nav derives previous/next sibling links for content pages.
//
// Every function here is pure: callers pass in an already fetched and
// already ordered sibling list, and nothing is re-sorted.
package nav

import "studio-content/internal/domain"

// Sibling is the minimum an item needs to take part in prev/next navigation.
type Sibling struct {
	Slug  string
	Title string
}

// Kind names the static labels used for a non-page content type.
type Kind struct {
	Previous string
	Next     string
}

var (
	Services     = Kind{Previous: "Previous Service", Next: "Next Service"}
	Projects     = Kind{Previous: "Previous Project", Next: "Next Project"}
	ProcessSteps = Kind{Previous: "Previous Step", Next: "Next Step"}
	UxProblems   = Kind{Previous: "Previous Problem", Next: "Next Problem"}
	UxSolutions  = Kind{Previous: "Previous Solution", Next: "Next Solution"}
)

const (
	olderPostLabel = "Older Post"
	newerPostLabel = "Newer Post"
)

var pageTypeLabels = map[domain.PageType]string{
	domain.PageTypeMain:       "Main",
	domain.PageTypeResources:  "Resources",
	domain.PageTypeLegal:      "Legal",
	domain.PageTypeProduct:    "Product",
	domain.PageTypeMarketing:  "Marketing",
	domain.PageTypeContentHub: "Content Hub",
	domain.PageTypeStandard:   "Page",
	domain.PageTypeOther:      "Other",
}

// CategoryLabel returns the human label for a page type. Unknown types read as "Page".
func CategoryLabel(t domain.PageType) string {
	if label, ok := pageTypeLabels[t]; ok {
		return label
	}
	return "Page"
}

// Resolve finds currentSlug in items by exact match and returns the items on
// either side. Both are nil when the slug is absent.
func Resolve[T any](items []T, currentSlug string, slugOf func(T) string) (prev, next *T) {
	idx := -1
	for i := range items {
		if slugOf(items[i]) == currentSlug {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}
	if idx > 0 {
		p := items[idx-1]
		prev = &p
	}
	if idx < len(items)-1 {
		n := items[idx+1]
		next = &n
	}
	return prev, next
}

// PageNeighbors labels each neighbor with its own page type.
func PageNeighbors(pages []domain.NavigablePageInfo, currentSlug string) domain.NavLinks {
	prev, next := Resolve(pages, currentSlug, func(p domain.NavigablePageInfo) string { return p.Slug })
	var links domain.NavLinks
	if prev != nil {
		links.Previous = &domain.NavLinkInfo{Slug: prev.Slug, Title: prev.Title, CategoryLabel: CategoryLabel(prev.PageType)}
	}
	if next != nil {
		links.Next = &domain.NavLinkInfo{Slug: next.Slug, Title: next.Title, CategoryLabel: CategoryLabel(next.PageType)}
	}
	return links
}

// Neighbors labels neighbors with the static labels of kind.
func Neighbors(items []Sibling, currentSlug string, kind Kind) domain.NavLinks {
	prev, next := Resolve(items, currentSlug, slugOf)
	return domain.NavLinks{
		Previous: link(prev, kind.Previous),
		Next:     link(next, kind.Next),
	}
}

// PostNeighbors expects posts newest first. Previous is the chronologically
// older post, which sits after the current one in the list.
func PostNeighbors(posts []Sibling, currentSlug string) domain.NavLinks {
	before, after := Resolve(posts, currentSlug, slugOf)
	return domain.NavLinks{
		Previous: link(after, olderPostLabel),
		Next:     link(before, newerPostLabel),
	}
}

func slugOf(s Sibling) string { return s.Slug }

func link(s *Sibling, label string) *domain.NavLinkInfo {
	if s == nil {
		return nil
	}
	return &domain.NavLinkInfo{Slug: s.Slug, Title: s.Title, CategoryLabel: label}
}
