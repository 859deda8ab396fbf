package styleguide

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownLabel is returned when a code sample label is not one of
	// correct, acceptable, or wrong.
	ErrUnknownLabel = errors.New("unknown code sample label")
)

// Label classifies how correct a code sample is. The set of labels is
// closed; the zero value is not a valid Label.
type Label int

const (
	// LabelCorrect marks a sample showing the preferred style.
	LabelCorrect Label = iota + 1

	// LabelAcceptable marks a sample that is allowed, but not preferred.
	LabelAcceptable

	// LabelWrong marks a sample showing a style to avoid.
	LabelWrong
)

// LabelPresentation is the text and CSS class a Label is rendered with.
type LabelPresentation struct {
	// Display is the human-readable text shown inside the label.
	Display string

	// Style is the suffix of the label's label-* CSS class.
	Style string
}

// Presentation returns how l is displayed. It returns ErrUnknownLabel if l
// is not one of the defined labels.
func (l Label) Presentation() (LabelPresentation, error) {
	switch l {
	case LabelCorrect:
		return LabelPresentation{Display: "Correct", Style: "success"}, nil
	case LabelAcceptable:
		return LabelPresentation{Display: "Acceptable", Style: "warning"}, nil
	case LabelWrong:
		return LabelPresentation{Display: "Wrong", Style: "important"}, nil
	}
	return LabelPresentation{}, fmt.Errorf("label %d: %w", int(l), ErrUnknownLabel)
}

// String returns the tag used for l in templates and sample files.
func (l Label) String() string {
	switch l {
	case LabelCorrect:
		return "correct"
	case LabelAcceptable:
		return "acceptable"
	case LabelWrong:
		return "wrong"
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// ParseLabel returns the Label for tag. Tags are matched exactly.
func ParseLabel(tag string) (Label, error) {
	switch tag {
	case "correct":
		return LabelCorrect, nil
	case "acceptable":
		return LabelAcceptable, nil
	case "wrong":
		return LabelWrong, nil
	}
	return 0, fmt.Errorf("%q: %w", tag, ErrUnknownLabel)
}

// MarshalText implements encoding.TextMarshaler.
func (l Label) MarshalText() ([]byte, error) {
	if _, err := l.Presentation(); err != nil {
		return nil, err
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Label) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: label must be a string: %w", node.Line, ErrUnknownLabel)
	}
	return l.UnmarshalText([]byte(node.Value))
}
