package presenter

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/dexview/internal/pokeapi"
)

// Renderer turns a lookup result into output region content.
type Renderer interface {
	RenderSubject(info pokeapi.SubjectInfo) (string, error)
	// RenderError returns the generic message shown for any failed lookup.
	RenderError() string
}

// Format names a Renderer.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// ParseFormat maps a config or flag value to a Format.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text or html)", value)
	}
}

// NewRenderer returns the renderer for f.
func NewRenderer(f Format) Renderer {
	if f == FormatHTML {
		return HTMLRenderer{}
	}
	return TextRenderer{}
}

const errorMessage = "Error fetching Pokemon information. Please try again."

// DisplayName upper-cases the first rune of name and leaves the rest as is.
func DisplayName(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return cases.Upper(language.Und).String(string(r)) + name[size:]
}

// FormatWeight prints kilograms in their shortest exact form: 4, 90.5, 0.
func FormatWeight(kg float64) string {
	return strconv.FormatFloat(kg, 'f', -1, 64) + " kg"
}

// HiddenLabel renders the hidden flag the way the output region shows it.
func HiddenLabel(hidden bool) string {
	if hidden {
		return "Yes"
	}
	return "No"
}

// AbilityLine is the one-line summary of an ability, e.g. "Limber (Hidden: No, Slot: 1)".
func AbilityLine(a pokeapi.AbilityRecord) string {
	return fmt.Sprintf("%s %s", DisplayName(a.Name), abilityInfo(a))
}

func abilityInfo(a pokeapi.AbilityRecord) string {
	return fmt.Sprintf("(Hidden: %s, Slot: %d)", HiddenLabel(a.IsHidden), a.Slot)
}

// TextRenderer renders plain text for terminals.
type TextRenderer struct{}

// RenderSubject implements Renderer.
func (TextRenderer) RenderSubject(info pokeapi.SubjectInfo) (string, error) {
	var b strings.Builder
	b.WriteString(DisplayName(info.Name))
	b.WriteString("\n")
	b.WriteString("Weight: ")
	b.WriteString(FormatWeight(info.WeightKg))
	b.WriteString("\n")
	b.WriteString("Abilities:")
	for _, a := range info.Abilities {
		b.WriteString("\n  • ")
		b.WriteString(AbilityLine(a))
	}
	return b.String(), nil
}

// RenderError implements Renderer.
func (TextRenderer) RenderError() string {
	return errorMessage
}

var subjectTemplate = template.Must(template.New("subject").Parse(`<h2>{{.Name}}</h2>
<p><strong>Weight:</strong> {{.Weight}}</p>
<p><strong>Abilities:</strong></p>
<ul>
{{- range .Abilities}}
    <li>
        <span class="ability-name">{{.Name}}</span>
        <span class="ability-info">{{.Info}}</span>
    </li>
{{- end}}
</ul>
`))

type subjectView struct {
	Name      string
	Weight    string
	Abilities []abilityView
}

type abilityView struct {
	Name string
	Info string
}

// HTMLRenderer renders the HTML fragment a web page drops into its output
// container. Catalog values are escaped.
type HTMLRenderer struct{}

// RenderSubject implements Renderer.
func (HTMLRenderer) RenderSubject(info pokeapi.SubjectInfo) (string, error) {
	view := subjectView{
		Name:      DisplayName(info.Name),
		Weight:    FormatWeight(info.WeightKg),
		Abilities: make([]abilityView, 0, len(info.Abilities)),
	}
	for _, a := range info.Abilities {
		view.Abilities = append(view.Abilities, abilityView{
			Name: DisplayName(a.Name),
			Info: abilityInfo(a),
		})
	}

	var buf bytes.Buffer
	if err := subjectTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// RenderError implements Renderer.
func (HTMLRenderer) RenderError() string {
	return `<p class="error">` + errorMessage + `</p>`
}
