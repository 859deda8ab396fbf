package styleguide

import (
	"html/template"
)

// Funcs returns the helpers every page can use in its templates:
//
//	codeSamples        CodeSamples
//	linkTo             LinkTo
//	topNavItem         TopNavItem, e.g. {{ topNavItem .Item "Home" "/" }}
//	stylesheetLinkTag  StylesheetLinkTag
//	isBlogPost         IsBlogPost
//	articles           Articles
//	sortedArticles     SortedArticles
//	markdown           Item.HTML
//
// Sites and Components implementing FuncMapExtender can override any of
// them.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"codeSamples":       CodeSamples,
		"linkTo":            LinkTo,
		"topNavItem":        TopNavItem,
		"stylesheetLinkTag": StylesheetLinkTag,
		"isBlogPost":        IsBlogPost,
		"articles":          Articles,
		"sortedArticles":    SortedArticles,
		"markdown": func(item Item) (template.HTML, error) {
			return item.HTML()
		},
	}
}
