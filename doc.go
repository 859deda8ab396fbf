// Package styleguide provides the template helpers used to build a coding
// style guide as a static site, and a small html/template host to render
// that site's pages with them.
//
// The central helper is RenderCodeSamples, which turns an ordered list of
// labeled code samples into a single <pre> block. Each sample is tagged as
// correct, acceptable, or wrong, and rendered with a label whose text and
// CSS class are fixed by that tag:
//
//	<pre class="well nolines"><span class="label label-success">Correct</span><code class="language-ruby">puts 1</code></pre>
//
// Code text is inserted verbatim. Nothing in this package escapes or
// sanitizes the HTML it is given; callers are expected to supply trusted or
// pre-escaped content.
//
// The remaining helpers cover navigation (LinkTo, TopNavItem), stylesheets
// (StylesheetLinkTag), and blogging (IsBlogPost, Articles, SortedArticles).
// All of them are pure functions and safe to call from multiple goroutines.
//
// A Site holds the templates and content Items of the style guide. To render
// a page, pass it to the Render function. The page will be made available as
// .Page within the template, its Item as .Item, and the Site as .Site. Every
// helper is registered in the template's FuncMap; templates pass the current
// Item to topNavItem explicitly, as in {{ topNavItem .Item "Home" "/" }}.
// Item content is itself executed with the same helpers before it is
// rendered as Markdown, so articles can include code samples.
package styleguide
