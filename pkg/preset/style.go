package preset

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	aserrors "github.com/astfn/as-enum/pkg/errors"
)

// LabelStyle rewrites labels that a preset entry left out.
type LabelStyle string

const (
	// LabelStyleNone keeps the key as the label.
	LabelStyleNone LabelStyle = ""
	// LabelStyleTitle renders "in_progress" as "In Progress".
	LabelStyleTitle LabelStyle = "title"
	// LabelStyleUpper renders "in_progress" as "IN_PROGRESS".
	LabelStyleUpper LabelStyle = "upper"
	// LabelStyleLower renders "In_Progress" as "in_progress".
	LabelStyleLower LabelStyle = "lower"
)

// GetLabelStyles returns the names accepted by ParseLabelStyle.
func GetLabelStyles() []string {
	return []string{string(LabelStyleTitle), string(LabelStyleUpper), string(LabelStyleLower)}
}

// ParseLabelStyle parses s case-insensitively. The empty string and "none"
// yield LabelStyleNone.
func ParseLabelStyle(s string) (LabelStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return LabelStyleNone, nil
	case "title":
		return LabelStyleTitle, nil
	case "upper":
		return LabelStyleUpper, nil
	case "lower":
		return LabelStyleLower, nil
	default:
		return LabelStyleNone, aserrors.NewWithContext(aserrors.ErrCodeInvalidRequest,
			"invalid label style", map[string]any{
				"labelStyle": s,
				"allowed":    GetLabelStyles(),
			})
	}
}

var wordSeparators = strings.NewReplacer("_", " ", "-", " ")

// Apply renders key in the style. Casers are not safe for concurrent use,
// so one is created per call.
func (s LabelStyle) Apply(key string) string {
	switch s {
	case LabelStyleTitle:
		return cases.Title(language.Und).String(wordSeparators.Replace(key))
	case LabelStyleUpper:
		return cases.Upper(language.Und).String(key)
	case LabelStyleLower:
		return cases.Lower(language.Und).String(key)
	default:
		return key
	}
}
