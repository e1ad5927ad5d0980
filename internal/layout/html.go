package layout

import (
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/net/html"

	"github.com/sells-group/agreement-cli/internal/model"
)

var (
	//go:embed assets/agreement.css
	baseCSS string

	//go:embed assets/document.gohtml
	documentTmpl string
)

var documentTemplate = template.Must(template.New("document").Parse(documentTmpl))

// HTMLEngine assembles the full markup document. Its output is the input of
// every print engine.
type HTMLEngine struct {
	tmpl *template.Template
}

// NewHTMLEngine creates an HTMLEngine.
func NewHTMLEngine() *HTMLEngine {
	return &HTMLEngine{tmpl: documentTemplate}
}

type pageView struct {
	Name     model.Page
	Sections []sectionView
}

type sectionView struct {
	Name    string
	Kind    model.SectionKind
	Variant string
	HTML    template.HTML
}

type documentView struct {
	ID         string
	BranchCode string
	Style      template.CSS
	Pages      []pageView
}

// Render builds and validates the markup for doc.
func (e *HTMLEngine) Render(ctx context.Context, doc *model.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "layout: render html")
	}
	if doc == nil || len(doc.Sections) == 0 {
		return nil, eris.New("layout: empty document")
	}

	v := documentView{
		ID:         doc.ID,
		BranchCode: doc.BranchCode,
		Style:      template.CSS(PageRule(doc.Margins) + "\n" + baseCSS),
	}
	for _, p := range doc.Pages() {
		pv := pageView{Name: p}
		for _, s := range doc.SectionsOn(p) {
			pv.Sections = append(pv.Sections, sectionView{
				Name:    s.Name,
				Kind:    s.Kind,
				Variant: s.Variant,
				HTML:    template.HTML(s.HTML), //nolint:gosec // section markup is produced by html/template
			})
		}
		v.Pages = append(v.Pages, pv)
	}

	var b strings.Builder
	if err := e.tmpl.Execute(&b, v); err != nil {
		return nil, eris.Wrap(err, "layout: execute document template")
	}
	if err := Validate(b.String()); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// PageRule returns the @page rule carrying the four margins in inches.
func PageRule(m model.Margins) string {
	return fmt.Sprintf("@page { size: letter; margin-top: %sin; margin-bottom: %sin; margin-left: %sin; margin-right: %sin; }",
		inches(m.Top), inches(m.Bottom), inches(m.Left), inches(m.Right))
}

func inches(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// ValidationError reports markup whose tags do not nest.
type ValidationError struct {
	Tag    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("layout: invalid markup at <%s>: %s", e.Tag, e.Reason)
}

// Validate checks that every non-void element in markup is closed in order.
func Validate(markup string) error {
	z := html.NewTokenizer(strings.NewReader(markup))
	var open []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return eris.Wrap(err, "layout: tokenize markup")
			}
			if len(open) > 0 {
				top := open[len(open)-1]
				return &ValidationError{Tag: top, Reason: fmt.Sprintf("%d element(s) never closed", len(open))}
			}
			return nil
		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if !voidElements[tag] {
				open = append(open, tag)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if voidElements[tag] {
				continue
			}
			if len(open) == 0 {
				return &ValidationError{Tag: tag, Reason: "close tag without open element"}
			}
			top := open[len(open)-1]
			if top != tag {
				return &ValidationError{Tag: tag, Reason: fmt.Sprintf("expected </%s>", top)}
			}
			open = open[:len(open)-1]
		}
	}
}
