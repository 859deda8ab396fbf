package styleguide

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrItemNotFound is returned when a page is requested for an Item the
	// site doesn't have.
	ErrItemNotFound = errors.New("item not found")
)

var _ Site = &StyleGuide{}

// StyleGuide is a Site built from a Config: the Items in its content
// directory, rendered with the layouts in its layout directory.
type StyleGuide struct {
	*CachedSite

	Config Config
}

// NewStyleGuide loads the Items in content and returns a StyleGuide that
// renders them with the templates in layouts.
func NewStyleGuide(cfg Config, content, layouts fs.FS) (*StyleGuide, error) {
	items, err := LoadItems(content)
	if err != nil {
		return nil, fmt.Errorf("error loading content: %w", err)
	}
	return &StyleGuide{
		CachedSite: NewCachedSite(layouts, items),
		Config:     cfg,
	}, nil
}

// Title returns the configured title of the site.
func (g *StyleGuide) Title() string {
	return g.Config.Title
}

// Nav returns the configured top navigation.
func (g *StyleGuide) Nav() []NavEntry {
	return g.Config.Nav
}

// Page returns the LayoutPage rendering the Item with the passed
// identifier.
func (g *StyleGuide) Page(ctx context.Context, identifier string) (LayoutPage, error) {
	item, ok := g.Item(identifier)
	if !ok {
		return LayoutPage{}, fmt.Errorf("%q: %w", identifier, ErrItemNotFound)
	}
	layout := g.Config.Layout
	if custom, ok := item.Attributes["layout"].(string); ok && custom != "" {
		layout = custom
	}
	logger(ctx).DebugContext(ctx, "resolved page", "identifier", item.Identifier, "layout", layout)
	return LayoutPage{
		Content:         item,
		Layout:          layout,
		StylesheetNames: g.Config.Stylesheets,
	}, nil
}

var _ Page = LayoutPage{}
var _ ItemPage = LayoutPage{}
var _ StylesheetLinker = LayoutPage{}

// LayoutPage is a Page rendering a single Item with a layout template. The
// layout is executed directly; it can use the markdown helper on .Item to
// include the Item's content.
type LayoutPage struct {
	Content         Item
	Layout          string
	StylesheetNames []string
}

// Templates returns the page's layout.
func (p LayoutPage) Templates(_ context.Context) []string {
	return []string{p.Layout}
}

// Key returns the page's layout; every page sharing a layout parses the same
// templates.
func (p LayoutPage) Key(_ context.Context) string {
	return "layout:" + p.Layout
}

// ExecutedTemplate returns the page's layout.
func (p LayoutPage) ExecutedTemplate(_ context.Context) string {
	return p.Layout
}

// Item returns the Item being rendered.
func (p LayoutPage) Item(_ context.Context) Item {
	return p.Content
}

// Stylesheets returns the stylesheets the page links to.
func (p LayoutPage) Stylesheets(_ context.Context) []string {
	return p.StylesheetNames
}
