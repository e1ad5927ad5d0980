package model

// Page names one physical page group of the agreement.
type Page string

const (
	PageAgreement      Page = "agreement"
	PageTerms          Page = "terms"
	PageRights         Page = "rights"
	PageFundsTransfer  Page = "funds_transfer"
	PageConsumerNotice Page = "consumer_notice"
)

// SectionKind says how a section came to be in the document.
type SectionKind string

const (
	SectionFixed       SectionKind = "fixed"       // boilerplate present in every document
	SectionConditional SectionKind = "conditional" // present only when its clause family applies
	SectionComputed    SectionKind = "computed"    // always present, text derived from inputs
)

// Section is one named block of marked-up text.
type Section struct {
	Name    string      `json:"name"`
	Page    Page        `json:"page"`
	Kind    SectionKind `json:"kind"`
	Variant string      `json:"variant,omitempty"`
	HTML    string      `json:"html"`
}

// Document is the content model handed to a layout engine.
type Document struct {
	ID         string    `json:"id"`
	BranchCode string    `json:"branch_code"`
	StateCode  string    `json:"state_code"`
	Footer     string    `json:"footer"`
	Margins    Margins   `json:"margins"`
	Sections   []Section `json:"sections"`
}

// Section returns the named section.
func (d *Document) Section(name string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Has reports whether the named section is present.
func (d *Document) Has(name string) bool {
	_, ok := d.Section(name)
	return ok
}

// Pages returns the distinct pages in document order.
func (d *Document) Pages() []Page {
	var pages []Page
	seen := make(map[Page]bool)
	for _, s := range d.Sections {
		if !seen[s.Page] {
			seen[s.Page] = true
			pages = append(pages, s.Page)
		}
	}
	return pages
}

// SectionsOn returns the sections of page p in order.
func (d *Document) SectionsOn(p Page) []Section {
	var out []Section
	for _, s := range d.Sections {
		if s.Page == p {
			out = append(out, s)
		}
	}
	return out
}
