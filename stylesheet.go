package styleguide

import (
	"context"
	"html/template"
	"strings"
)

// StylesheetLinker is an interface that Components can fulfill to link to
// stylesheets from the rendered page. The <link> tags for every stylesheet
// the page and its Components use will be made available to the template as
// .Stylesheets.
type StylesheetLinker interface {
	// Stylesheets returns the names of the stylesheets, without directory
	// or extension, that the Component needs. A name of "base" links to
	// /stylesheets/base.css.
	//
	// If this Component uses any other Components without returning them
	// from UseComponents, it should include their Stylesheets output in
	// its own Stylesheets output.
	Stylesheets(context.Context) []string
}

// StylesheetLinkTag returns a <link> tag for each named stylesheet, one per
// line, in the order given.
func StylesheetLinkTag(names ...string) template.HTML {
	tags := make([]string, 0, len(names))
	for _, name := range names {
		tags = append(tags, `<link rel="stylesheet" type="text/css" href="/stylesheets/`+name+`.css" media="screen" />`)
	}
	return template.HTML(strings.Join(tags, "\n")) // #nosec G203
}

func getComponentStylesheets(ctx context.Context, component Component) []string {
	var results []string
	seen := map[string]struct{}{}
	components := getRecursiveComponents(ctx, component)
	for _, comp := range components {
		linker, ok := comp.(StylesheetLinker)
		if !ok {
			continue
		}
		for _, name := range linker.Stylesheets(ctx) {
			if _, ok := seen[name]; ok {
				continue
			}
			results = append(results, name)
			seen[name] = struct{}{}
		}
	}
	return results
}
