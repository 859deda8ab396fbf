package styleguide

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingFrontMatterEnd is returned when an item opens a front
	// matter block with --- but never closes it.
	ErrMissingFrontMatterEnd = errors.New("front matter has no closing delimiter")

	// ErrInvalidCreatedAt is returned when an item's created_at attribute
	// isn't a date or timestamp.
	ErrInvalidCreatedAt = errors.New("invalid created_at")
)

// KindArticle is the Kind of Items that are blog posts.
const KindArticle = "article"

// dateLayouts are the formats accepted for created_at, in the order they're
// tried.
var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// markdown renders Item content. Raw HTML in the content is passed through,
// as code samples and links are.
var markdown = goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))

// Item is a single piece of content on the site.
type Item struct {
	// Identifier uniquely identifies the Item within the site, e.g.
	// /articles/naming/.
	Identifier string

	// Path is the path the Item is served at.
	Path string

	// Kind is the type of content the Item holds. Blog posts have a Kind
	// of KindArticle.
	Kind string

	Title     string
	CreatedAt time.Time

	// Attributes holds every front matter key of the Item, including the
	// ones promoted to fields above.
	Attributes map[string]any

	// Content is the Markdown body of the Item.
	Content string
}

// HTML renders the Item's content. The content is first executed as a
// text/template with the helpers from Funcs and the Item as its data, so
// articles can call codeSamples and the other helpers, then rendered as
// Markdown. Helper output is written unescaped, like the rest of the
// content.
func (item Item) HTML() (template.HTML, error) {
	tmpl, err := texttemplate.New(item.Identifier).Funcs(texttemplate.FuncMap(Funcs())).Parse(item.Content)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %w", item.Identifier, err)
	}
	var expanded bytes.Buffer
	if err := tmpl.Execute(&expanded, item); err != nil {
		return "", fmt.Errorf("error executing %q: %w", item.Identifier, err)
	}
	var out bytes.Buffer
	if err := markdown.Convert(expanded.Bytes(), &out); err != nil {
		return "", fmt.Errorf("error rendering %q: %w", item.Identifier, err)
	}
	return template.HTML(out.String()), nil // #nosec G203
}

// ParseItem builds an Item from a content file. The file may open with a
// YAML front matter block delimited by --- lines; title, kind, and
// created_at are read from it.
func ParseItem(identifier string, src []byte) (Item, error) {
	item := Item{
		Identifier: normalizeIdentifier(identifier),
		Attributes: map[string]any{},
	}
	item.Path = item.Identifier

	front, body, err := splitFrontMatter(src)
	if err != nil {
		return Item{}, fmt.Errorf("error parsing %q: %w", identifier, err)
	}
	item.Content = string(body)
	if len(front) < 1 {
		return item, nil
	}
	if err := yaml.Unmarshal(front, &item.Attributes); err != nil {
		return Item{}, fmt.Errorf("error parsing front matter of %q: %w", identifier, err)
	}
	if item.Attributes == nil {
		item.Attributes = map[string]any{}
	}
	if title, ok := item.Attributes["title"].(string); ok {
		item.Title = title
	}
	if kind, ok := item.Attributes["kind"].(string); ok {
		item.Kind = kind
	}
	if created, ok := item.Attributes["created_at"]; ok {
		item.CreatedAt, err = parseCreatedAt(created)
		if err != nil {
			return Item{}, fmt.Errorf("error parsing %q: %w", identifier, err)
		}
	}
	return item, nil
}

// LoadItems parses every Markdown file in fsys as an Item. An Item's
// identifier is its file path without the extension; index files are
// identified by their directory.
func LoadItems(fsys fs.FS) ([]Item, error) {
	var items []Item
	err := fs.WalkDir(fsys, ".", func(file string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || path.Ext(file) != ".md" {
			return nil
		}
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("error reading %q: %w", file, err)
		}
		identifier := strings.TrimSuffix(file, ".md")
		if path.Base(identifier) == "index" {
			identifier = path.Dir(identifier)
		}
		item, err := ParseItem(identifier, contents)
		if err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func normalizeIdentifier(identifier string) string {
	identifier = strings.Trim(identifier, "/")
	if identifier == "" || identifier == "." {
		return "/"
	}
	return "/" + identifier + "/"
}

func splitFrontMatter(src []byte) (front, body []byte, err error) {
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(src, []byte("---\n")) {
		return nil, src, nil
	}
	rest := src[len("---\n"):]
	if bytes.HasPrefix(rest, []byte("---\n")) {
		return nil, rest[len("---\n"):], nil
	}
	idx := bytes.Index(rest, []byte("\n---\n"))
	if idx < 0 {
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return rest[:len(rest)-len("---")], nil, nil
		}
		return nil, nil, ErrMissingFrontMatterEnd
	}
	return rest[:idx+1], rest[idx+len("\n---\n"):], nil
}

func parseCreatedAt(val any) (time.Time, error) {
	switch created := val.(type) {
	case time.Time:
		return created, nil
	case string:
		for _, layout := range dateLayouts {
			parsed, err := time.Parse(layout, created)
			if err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fmt.Errorf("%q: %w", created, ErrInvalidCreatedAt)
	}
	return time.Time{}, fmt.Errorf("%v: %w", val, ErrInvalidCreatedAt)
}
