// Package formatter renders trace.Derivation values as aligned,
// Fitch-style proof listings for terminal output. Assumption boxes are
// drawn as vertical bars, and the rule annotation column lines up across
// the listing.
package formatter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/gnolang/natded/trace"
)

var (
	sequentStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle       = color.New(color.FgBlue)
	assumptionStyle = color.New(color.FgHiYellow)
	ruleStyle       = color.New(color.FgYellow)
	conclusionStyle = color.New(color.FgGreen, color.Bold)
)

const listingTemplate = `{{header .}}
{{range .Lines}}{{number .}}{{bars .}}{{formula .}}{{annotation .}}
{{end}}`

// Formatter renders derivations. The zero value renders without color;
// New returns one with color enabled.
type Formatter struct {
	colorize bool
}

func New() *Formatter {
	return &Formatter{colorize: true}
}

// WithColor toggles ANSI styling and returns the formatter.
func (f *Formatter) WithColor(on bool) *Formatter {
	f.colorize = on
	return f
}

func (f *Formatter) paint(st *color.Color, s string) string {
	if !f.colorize {
		return s
	}
	return st.Sprint(s)
}

type listingData struct {
	Name    string
	Sequent string
	Lines   []lineData
}

type lineData struct {
	Num          int
	NumWidth     int
	FormulaWidth int
	Last         bool
	Step         trace.Step
}

// Render produces the complete listing for a derivation.
func (f *Formatter) Render(d *trace.Derivation) string {
	numWidth := len(strconv.Itoa(d.Len()))
	formulaWidth := 0
	for _, s := range d.Steps {
		if w := 2*s.Depth + len(s.Formula); w > formulaWidth {
			formulaWidth = w
		}
	}

	data := listingData{Name: d.Name, Sequent: d.Sequent}
	for i, s := range d.Steps {
		data.Lines = append(data.Lines, lineData{
			Num:          i + 1,
			NumWidth:     numWidth,
			FormulaWidth: formulaWidth,
			Last:         i == d.Len()-1,
			Step:         s,
		})
	}

	funcMap := template.FuncMap{
		"header":     f.header,
		"number":     f.number,
		"bars":       f.bars,
		"formula":    f.formula,
		"annotation": f.annotation,
	}
	tmpl := template.Must(template.New("listing").Funcs(funcMap).Parse(listingTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("error formatting derivation: %v", err)
	}
	return buf.String()
}

func (f *Formatter) header(data listingData) string {
	return f.paint(sequentStyle, data.Name+": "+data.Sequent)
}

func (f *Formatter) number(line lineData) string {
	return f.paint(lineStyle, fmt.Sprintf("%*d | ", line.NumWidth, line.Num))
}

func (f *Formatter) bars(line lineData) string {
	return f.paint(lineStyle, strings.Repeat("| ", line.Step.Depth))
}

func (f *Formatter) formula(line lineData) string {
	pad := strings.Repeat(" ", line.FormulaWidth-2*line.Step.Depth-len(line.Step.Formula)+2)
	switch {
	case line.Last:
		return f.paint(conclusionStyle, line.Step.Formula) + pad
	case line.Step.Rule == trace.RuleAssumption:
		return f.paint(assumptionStyle, line.Step.Formula) + pad
	default:
		return line.Step.Formula + pad
	}
}

func (f *Formatter) annotation(line lineData) string {
	out := f.paint(ruleStyle, string(line.Step.Rule))
	if len(line.Step.Refs) > 0 {
		refs := make([]string, len(line.Step.Refs))
		for i, r := range line.Step.Refs {
			refs[i] = strconv.Itoa(r)
		}
		out += " " + strings.Join(refs, ",")
	}
	return out
}
