package domain

// PageType classifies a page and decides which content shape it carries.
type PageType string

const (
	PageTypeMain       PageType = "MAIN"
	PageTypeResources  PageType = "RESOURCES"
	PageTypeLegal      PageType = "LEGAL"
	PageTypeProduct    PageType = "PRODUCT"
	PageTypeMarketing  PageType = "MARKETING"
	PageTypeContentHub PageType = "CONTENT_HUB"
	PageTypeStandard   PageType = "STANDARD"
	PageTypeOther      PageType = "OTHER"
)

// NonNavigablePageTypes are excluded from the global prev/next chain.
var NonNavigablePageTypes = []PageType{PageTypeLegal, PageTypeOther, PageTypeStandard}

// Valid reports whether t is one of the known page types.
func (t PageType) Valid() bool {
	switch t {
	case PageTypeMain, PageTypeResources, PageTypeLegal, PageTypeProduct,
		PageTypeMarketing, PageTypeContentHub, PageTypeStandard, PageTypeOther:
		return true
	}
	return false
}

// Navigable reports whether pages of this type take part in site navigation.
func (t PageType) Navigable() bool {
	for _, excluded := range NonNavigablePageTypes {
		if t == excluded {
			return false
		}
	}
	return true
}

// Status is the publication state shared by pages and posts.
type Status string

const (
	StatusDraft         Status = "DRAFT"
	StatusPendingReview Status = "PENDING_REVIEW"
	StatusPublished     Status = "PUBLISHED"
	StatusArchived      Status = "ARCHIVED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// OfferingType tells single services apart from bundles.
type OfferingType string

const (
	OfferingIndividual OfferingType = "INDIVIDUAL"
	OfferingBundle     OfferingType = "BUNDLE"
)

func (t OfferingType) Valid() bool {
	return t == OfferingIndividual || t == OfferingBundle
}
