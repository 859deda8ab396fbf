package styleguide

import (
	"html"
	"html/template"
)

// LinkTo returns an <a> element linking text to path. The path is escaped
// for use in an attribute; the text is not escaped.
func LinkTo(text, path string) template.HTML {
	return template.HTML(`<a href="` + html.EscapeString(path) + `">` + text + `</a>`) // #nosec G203
}

// TopNavItem returns a navigation list item linking name to path. The item
// has the active class when current is the Item served at path.
func TopNavItem(current Item, name, path string) template.HTML {
	open := `<li>`
	if current.Path == path {
		open = `<li class="active">`
	}
	return template.HTML(open) + LinkTo(name, path) + `</li>` // #nosec G203
}
