package styleguide

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "impractical.co/styleguide"

var (
	// ErrNoTemplatePath is returned when a template path is needed, but
	// none are supplied.
	ErrNoTemplatePath = errors.New("need at least one template path")

	// ErrTemplatePatternMatchesNoFiles is returned when a template path is
	// a pattern, but that pattern doesn't match any files.
	ErrTemplatePatternMatchesNoFiles = errors.New("pattern matches no files")
)

// Component is an interface for a piece of a page that can be rendered to
// HTML: a layout, a navbar, a sidebar of recent articles.
type Component interface {
	// Templates returns a list of paths or glob patterns to html/template
	// contents that need to be parsed before the component can be
	// rendered.
	Templates(context.Context) []string
}

// ComponentUser is an interface that a Component can optionally implement to
// list the Components that it relies upon. Their templates, stylesheets, and
// functions will be included whenever the Component is rendered.
type ComponentUser interface {
	// UseComponents returns the Components that this Component relies on.
	UseComponents(context.Context) []Component
}

// FuncMapExtender is an interface that Sites and Components can fulfill to
// add to the map of functions available to them when rendering.
type FuncMapExtender interface {
	// FuncMap returns an html/template.FuncMap containing all the
	// functions that the Component is adding to the FuncMap.
	FuncMap(context.Context) template.FuncMap
}

// Page is an interface for a page that can be passed to Render. It defines a
// single logical page of the site, usually backed by an Item.
type Page interface {
	Component

	// Key is a unique key to use when caching this page so it doesn't need
	// to be re-parsed. Pages sharing a layout and templates can share a
	// key.
	Key(context.Context) string

	// ExecutedTemplate is the template that needs to actually be executed
	// when rendering the page. It's usually the layout's template, with
	// the page's own templates filling in its blocks.
	ExecutedTemplate(context.Context) string
}

// ItemPage is an optional interface for Pages that render an Item. The Item
// will be available to templates as .Item, and is the Item navigation
// helpers treat as current.
type ItemPage interface {
	Item(context.Context) Item
}

// RenderData is the data that is passed to a page when rendering it.
type RenderData[SiteType Site, PageType Page] struct {
	// Site is the Site the page is being rendered for.
	Site SiteType

	// Page is the page being rendered.
	Page PageType

	// Item is the Item the page renders, if the page implements
	// ItemPage.
	Item Item

	// Stylesheets holds the <link> tags for every stylesheet returned by
	// the page and its Components through StylesheetLinker.
	Stylesheets template.HTML
}

// Render renders the passed Page to the Writer. If it can't, a server error
// page is written instead. If the Site implements ServerErrorPager, that will
// be rendered; if not, a simple text message indicating a server error will
// be written. Output from a page that failed part way through is discarded.
func Render[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) {
	ctx, span := startRenderSpan(ctx, "styleguide.Render", page)
	defer span.End()

	err := basicRender(ctx, out, site, page)
	if err == nil {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, "error rendering page")
	logger(ctx).ErrorContext(ctx, "error rendering page", "error", err, "key", page.Key(ctx))

	if pager, ok := Site(site).(ServerErrorPager); ok {
		err = basicRender(ctx, out, site, pager.ServerErrorPage(ctx))
		if err != nil {
			logger(ctx).ErrorContext(ctx, "error rendering server error page", "error", err)
		}
		return
	}

	_, err = out.Write([]byte("Server error."))
	if err != nil {
		logger(ctx).ErrorContext(ctx, "error writing server error message", "error", err)
	}
}

// RenderPage renders the passed Page to the Writer like Render does, but
// returns any error instead of writing a server error page. Nothing is
// written to out unless the page renders completely.
func RenderPage[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) error {
	ctx, span := startRenderSpan(ctx, "styleguide.RenderPage", page)
	defer span.End()

	err := basicRender(ctx, out, site, page)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "error rendering page")
		return err
	}
	return nil
}

func startRenderSpan(ctx context.Context, name string, page Page) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(
		attribute.String("styleguide.page.key", page.Key(ctx)),
		attribute.String("styleguide.page.type", fmt.Sprintf("%T", page)),
	))
}

func basicRender[SiteType Site, PageType Page](ctx context.Context, output io.Writer, site SiteType, page PageType) error {
	tmpl, err := getTemplate(ctx, site, page)
	if err != nil {
		return err
	}

	data := RenderData[SiteType, PageType]{
		Site:        site,
		Page:        page,
		Stylesheets: StylesheetLinkTag(getComponentStylesheets(ctx, page)...),
	}
	if itemPage, ok := Component(page).(ItemPage); ok {
		data.Item = itemPage.Item(ctx)
	}

	// buffered so a failed execution leaves nothing behind in output
	var buf bytes.Buffer
	executed := page.ExecutedTemplate(ctx)
	err = tmpl.ExecuteTemplate(&buf, executed, data)
	if err != nil {
		return fmt.Errorf("error executing template %q for %T: %w", executed, page, err)
	}
	_, err = buf.WriteTo(output)
	if err != nil {
		return fmt.Errorf("error writing %T: %w", page, err)
	}
	return nil
}

func getTemplate(ctx context.Context, site Site, page Page) (*template.Template, error) {
	key := page.Key(ctx)
	if cache, ok := site.(TemplateCacher); ok {
		cached := cache.GetCachedTemplate(ctx, key)
		if cached != nil {
			return cached, nil
		}
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "styleguide.parseTemplates", trace.WithAttributes(
		attribute.String("styleguide.page.key", key),
	))
	defer span.End()

	tmplPaths := getComponentTemplatePaths(ctx, page)
	if len(tmplPaths) < 1 {
		return nil, fmt.Errorf("error rendering %T: %w", page, ErrNoTemplatePath)
	}
	span.SetAttributes(attribute.StringSlice("styleguide.templates", tmplPaths))
	funcMap := getComponentFuncMap(ctx, site, page)
	parsed, err := parseTemplates(site.TemplateDir(ctx), funcMap, tmplPaths...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "error parsing templates")
		return nil, fmt.Errorf("error parsing templates %v for page %T: %w", tmplPaths, page, err)
	}
	if cache, ok := site.(TemplateCacher); ok {
		cache.SetCachedTemplate(ctx, key, parsed)
	}
	return parsed, nil
}

func getRecursiveComponents(ctx context.Context, component Component) []Component {
	results := []Component{component}

	if uses, ok := component.(ComponentUser); ok {
		children := uses.UseComponents(ctx)
		for _, child := range children {
			results = append(results, getRecursiveComponents(ctx, child)...)
		}
	}
	return results
}

func getComponentTemplatePaths(ctx context.Context, component Component) []string {
	var results []string
	seen := map[string]struct{}{}
	components := getRecursiveComponents(ctx, component)
	for _, comp := range components {
		paths := comp.Templates(ctx)
		for _, path := range paths {
			if _, ok := seen[path]; !ok {
				results = append(results, path)
				seen[path] = struct{}{}
			}
		}
	}
	return results
}

// getComponentFuncMap layers the FuncMaps available to a page: the package's
// helpers first, then the Site's, then each Component's.
func getComponentFuncMap(ctx context.Context, site Site, component Component) template.FuncMap {
	results := Funcs()
	if fm, ok := site.(FuncMapExtender); ok {
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	components := getRecursiveComponents(ctx, component)
	for _, comp := range components {
		fm, ok := comp.(FuncMapExtender)
		if !ok {
			continue
		}
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	return results
}

func parseTemplates(fsys fs.FS, funcs template.FuncMap, patterns ...string) (*template.Template, error) {
	var files []string
	for _, pattern := range patterns {
		list, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error listing files for %q: %w", pattern, err)
		}
		if len(list) < 1 {
			return nil, fmt.Errorf("error parsing %q: %w", pattern, ErrTemplatePatternMatchesNoFiles)
		}
		files = append(files, list...)
	}
	if len(files) < 1 {
		return nil, ErrNoTemplatePath
	}
	tmpl := template.New("").Funcs(funcs)
	for _, file := range files {
		sub := tmpl.New(file)
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		_, err = sub.Parse(string(contents))
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", file, err)
		}
	}
	return tmpl, nil
}

// mergeFuncMaps flattens two FuncMaps into one, with the values in `page`
// overriding the values in `in` if they have the same keys.
func mergeFuncMaps(in template.FuncMap, page template.FuncMap) template.FuncMap {
	res := template.FuncMap{}
	for k, v := range in {
		res[k] = v
	}
	for k, v := range page {
		res[k] = v
	}
	return res
}
