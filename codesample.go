package styleguide

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrOddSampleArgs is returned when the codeSamples template function
	// is called with a label that has no code following it.
	ErrOddSampleArgs = errors.New("code samples need a label and code for every sample")

	// ErrMalformedSample is returned when a sample in a YAML sample set is
	// not a single label: code mapping.
	ErrMalformedSample = errors.New("code sample must be a single label: code mapping")
)

// CodeSample is a single piece of example code and how correct it is.
type CodeSample struct {
	// Label says whether the sample is correct, acceptable, or wrong.
	Label Label

	// Code is the sample's source text. It is written to the output
	// as-is, without HTML escaping.
	Code string
}

// UnmarshalYAML implements yaml.Unmarshaler, decoding a mapping with a
// single key, the label, whose value is the code.
func (s *CodeSample) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: %w", node.Line, ErrMalformedSample)
	}
	var label Label
	if err := node.Content[0].Decode(&label); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	var code string
	if err := node.Content[1].Decode(&code); err != nil {
		return fmt.Errorf("line %d: %w: %w", node.Line, ErrMalformedSample, err)
	}
	s.Label = label
	s.Code = code
	return nil
}

// RenderCodeSamples renders samples, in order, into a single <pre> block,
// each sample's code preceded by its label.
//
// If any sample has a Label that isn't defined, nothing is rendered and an
// error wrapping ErrUnknownLabel is returned.
func RenderCodeSamples(samples []CodeSample) (string, error) {
	var out strings.Builder
	out.WriteString(`<pre class="well nolines">`)
	for pos, sample := range samples {
		pres, err := sample.Label.Presentation()
		if err != nil {
			return "", fmt.Errorf("sample %d: %w", pos, err)
		}
		out.WriteString(`<span class="label label-`)
		out.WriteString(pres.Style)
		out.WriteString(`">`)
		out.WriteString(pres.Display)
		out.WriteString(`</span><code class="language-ruby">`)
		out.WriteString(sample.Code)
		out.WriteString(`</code>`)
	}
	out.WriteString(`</pre>`)
	return out.String(), nil
}

// MustRenderCodeSamples is like RenderCodeSamples, but panics if the samples
// can't be rendered.
func MustRenderCodeSamples(samples []CodeSample) string {
	res, err := RenderCodeSamples(samples)
	if err != nil {
		panic(err)
	}
	return res
}

// CodeSamples is the template form of RenderCodeSamples. Its arguments
// alternate between label tags and code:
//
//	{{ codeSamples "correct" "puts 1" "wrong" "puts(1)" }}
func CodeSamples(args ...string) (template.HTML, error) {
	if len(args)%2 != 0 {
		return "", fmt.Errorf("got %d arguments: %w", len(args), ErrOddSampleArgs)
	}
	samples := make([]CodeSample, 0, len(args)/2)
	for pos := 0; pos < len(args); pos += 2 {
		label, err := ParseLabel(args[pos])
		if err != nil {
			return "", fmt.Errorf("sample %d: %w", pos/2, err)
		}
		samples = append(samples, CodeSample{Label: label, Code: args[pos+1]})
	}
	res, err := RenderCodeSamples(samples)
	if err != nil {
		return "", err
	}
	return template.HTML(res), nil // #nosec G203
}

// LoadCodeSamples reads a YAML list of samples, each a single-key mapping
// from label tag to code:
//
//	- correct: "puts 1"
//	- wrong: "puts(1)"
func LoadCodeSamples(in io.Reader) ([]CodeSample, error) {
	var samples []CodeSample
	err := yaml.NewDecoder(in).Decode(&samples)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding code samples: %w", err)
	}
	return samples, nil
}
