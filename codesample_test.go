package styleguide_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"impractical.co/styleguide"
)

func TestRenderCodeSamples(t *testing.T) {
	t.Parallel()

	type testCase struct {
		samples  []styleguide.CodeSample
		expected string
	}

	cases := map[string]testCase{
		"empty": {
			samples:  nil,
			expected: `<pre class="well nolines"></pre>`,
		},
		"single-correct": {
			samples: []styleguide.CodeSample{
				{Label: styleguide.LabelCorrect, Code: "puts 1"},
			},
			expected: `<pre class="well nolines"><span class="label label-success">Correct</span><code class="language-ruby">puts 1</code></pre>`,
		},
		"mixed-order": {
			samples: []styleguide.CodeSample{
				{Label: styleguide.LabelWrong, Code: "a"},
				{Label: styleguide.LabelCorrect, Code: "b"},
				{Label: styleguide.LabelAcceptable, Code: "c"},
			},
			expected: `<pre class="well nolines">` +
				`<span class="label label-important">Wrong</span><code class="language-ruby">a</code>` +
				`<span class="label label-success">Correct</span><code class="language-ruby">b</code>` +
				`<span class="label label-warning">Acceptable</span><code class="language-ruby">c</code>` +
				`</pre>`,
		},
		"duplicates-kept": {
			samples: []styleguide.CodeSample{
				{Label: styleguide.LabelWrong, Code: "x"},
				{Label: styleguide.LabelWrong, Code: "x"},
			},
			expected: `<pre class="well nolines">` +
				`<span class="label label-important">Wrong</span><code class="language-ruby">x</code>` +
				`<span class="label label-important">Wrong</span><code class="language-ruby">x</code>` +
				`</pre>`,
		},
		"code-not-escaped": {
			samples: []styleguide.CodeSample{
				{Label: styleguide.LabelAcceptable, Code: `<b>"hi" & bye</b>`},
			},
			expected: `<pre class="well nolines"><span class="label label-warning">Acceptable</span><code class="language-ruby"><b>"hi" & bye</b></code></pre>`,
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := styleguide.RenderCodeSamples(tc.samples)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
			if count := strings.Count(got, `<span class="label`); count != len(tc.samples) {
				t.Errorf("expected %d labels, got %d", len(tc.samples), count)
			}
			again, err := styleguide.RenderCodeSamples(tc.samples)
			if err != nil {
				t.Fatalf("unexpected error on second render: %s", err)
			}
			if again != got {
				t.Errorf("expected identical output on second render, got %q and %q", got, again)
			}
		})
	}
}

func TestRenderCodeSamplesOrderFollowsInput(t *testing.T) {
	t.Parallel()

	first := styleguide.CodeSample{Label: styleguide.LabelCorrect, Code: "first"}
	second := styleguide.CodeSample{Label: styleguide.LabelWrong, Code: "second"}

	forward := styleguide.MustRenderCodeSamples([]styleguide.CodeSample{first, second})
	backward := styleguide.MustRenderCodeSamples([]styleguide.CodeSample{second, first})

	if forward == backward {
		t.Fatalf("expected reordered input to change output, got %q for both", forward)
	}
	if strings.Index(forward, "first") > strings.Index(forward, "second") {
		t.Errorf("expected first before second in %q", forward)
	}
	if strings.Index(backward, "second") > strings.Index(backward, "first") {
		t.Errorf("expected second before first in %q", backward)
	}
}

func TestRenderCodeSamplesUnknownLabel(t *testing.T) {
	t.Parallel()

	for name, label := range map[string]styleguide.Label{
		"zero":         0,
		"out-of-range": styleguide.Label(42),
	} {
		label := label
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := styleguide.RenderCodeSamples([]styleguide.CodeSample{
				{Label: styleguide.LabelCorrect, Code: "fine"},
				{Label: label, Code: "broken"},
			})
			if !errors.Is(err, styleguide.ErrUnknownLabel) {
				t.Fatalf("expected ErrUnknownLabel, got %v", err)
			}
			if !strings.Contains(err.Error(), "sample 1") {
				t.Errorf("expected error to name the offending sample, got %q", err)
			}
			if got != "" {
				t.Errorf("expected no partial output, got %q", got)
			}
		})
	}
}

func TestMustRenderCodeSamplesPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unknown label")
		}
	}()
	styleguide.MustRenderCodeSamples([]styleguide.CodeSample{{Code: "no label"}})
}

func TestCodeSamplesTemplateFunc(t *testing.T) {
	t.Parallel()

	got, err := styleguide.CodeSamples("correct", "puts 1", "wrong", "puts(1)")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := `<pre class="well nolines">` +
		`<span class="label label-success">Correct</span><code class="language-ruby">puts 1</code>` +
		`<span class="label label-important">Wrong</span><code class="language-ruby">puts(1)</code>` +
		`</pre>`
	if diff := cmp.Diff(expected, string(got)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	_, err = styleguide.CodeSamples("correct", "puts 1", "wrong")
	if !errors.Is(err, styleguide.ErrOddSampleArgs) {
		t.Errorf("expected ErrOddSampleArgs, got %v", err)
	}

	_, err = styleguide.CodeSamples("Correct", "puts 1")
	if !errors.Is(err, styleguide.ErrUnknownLabel) {
		t.Errorf("expected ErrUnknownLabel, got %v", err)
	}
}

func TestLoadCodeSamples(t *testing.T) {
	t.Parallel()

	input := `
- wrong: "puts(1)"
- correct: puts 1
- acceptable: |
    puts(
      1
    )
`
	got, err := styleguide.LoadCodeSamples(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := []styleguide.CodeSample{
		{Label: styleguide.LabelWrong, Code: "puts(1)"},
		{Label: styleguide.LabelCorrect, Code: "puts 1"},
		{Label: styleguide.LabelAcceptable, Code: "puts(\n  1\n)\n"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCodeSamplesEmpty(t *testing.T) {
	t.Parallel()

	got, err := styleguide.LoadCodeSamples(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no samples, got %v", got)
	}
}

func TestLoadCodeSamplesErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		input    string
		expected error
	}{
		"unknown-label": {
			input:    "- right: puts 1\n",
			expected: styleguide.ErrUnknownLabel,
		},
		"two-keys": {
			input:    "- correct: puts 1\n  wrong: puts(1)\n",
			expected: styleguide.ErrMalformedSample,
		},
		"scalar-entry": {
			input:    "- puts 1\n",
			expected: styleguide.ErrMalformedSample,
		},
		"nested-code": {
			input:    "- correct:\n    nested: true\n",
			expected: styleguide.ErrMalformedSample,
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := styleguide.LoadCodeSamples(strings.NewReader(tc.input))
			if !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestLoadCodeSamplesKeepsDecodeReason(t *testing.T) {
	t.Parallel()

	_, err := styleguide.LoadCodeSamples(strings.NewReader("- correct:\n    nested: true\n"))
	if !errors.Is(err, styleguide.ErrMalformedSample) {
		t.Fatalf("expected ErrMalformedSample, got %v", err)
	}
	if !strings.Contains(err.Error(), "cannot unmarshal") {
		t.Errorf("expected the YAML decoding error to be included, got %q", err)
	}
}
