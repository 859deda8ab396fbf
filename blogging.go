package styleguide

import (
	"slices"
)

// IsBlogPost reports whether item is a blog post.
func IsBlogPost(item Item) bool {
	return item.Kind == KindArticle
}

// Articles returns the blog posts in items, in the order they appear.
func Articles(items []Item) []Item {
	var results []Item
	for _, item := range items {
		if !IsBlogPost(item) {
			continue
		}
		results = append(results, item)
	}
	return results
}

// SortedArticles returns the blog posts in items, newest first. Posts
// created at the same time keep the order they appear in items.
func SortedArticles(items []Item) []Item {
	results := Articles(items)
	slices.SortStableFunc(results, func(a, b Item) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return results
}
