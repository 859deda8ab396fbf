package styleguide_test

import (
	"fmt"
	"strings"

	"impractical.co/styleguide"
)

func ExampleRenderCodeSamples() {
	html, err := styleguide.RenderCodeSamples([]styleguide.CodeSample{
		{Label: styleguide.LabelCorrect, Code: "puts 1"},
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(html)

	//Output:
	// <pre class="well nolines"><span class="label label-success">Correct</span><code class="language-ruby">puts 1</code></pre>
}

func ExampleRenderCodeSamples_unknownLabel() {
	_, err := styleguide.RenderCodeSamples([]styleguide.CodeSample{
		{Label: styleguide.LabelWrong, Code: "puts(1)"},
		{Code: "puts 1"},
	})
	fmt.Println(err)

	//Output:
	// sample 1: label 0: unknown code sample label
}

func ExampleLoadCodeSamples() {
	samples, err := styleguide.LoadCodeSamples(strings.NewReader(`
- wrong: "puts(1)"
- correct: "puts 1"
`))
	if err != nil {
		panic(err)
	}
	for _, sample := range samples {
		fmt.Printf("%s: %s\n", sample.Label, sample.Code)
	}

	//Output:
	// wrong: puts(1)
	// correct: puts 1
}

func ExampleStylesheetLinkTag() {
	fmt.Println(styleguide.StylesheetLinkTag("base", "syntax"))

	//Output:
	// <link rel="stylesheet" type="text/css" href="/stylesheets/base.css" media="screen" />
	// <link rel="stylesheet" type="text/css" href="/stylesheets/syntax.css" media="screen" />
}

func ExampleTopNavItem() {
	current := styleguide.Item{Identifier: "/articles/", Path: "/articles/"}
	fmt.Println(styleguide.TopNavItem(current, "Home", "/"))
	fmt.Println(styleguide.TopNavItem(current, "Articles", "/articles/"))

	//Output:
	// <li><a href="/">Home</a></li>
	// <li class="active"><a href="/articles/">Articles</a></li>
}
