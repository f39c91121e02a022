package flatdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/infinilabs/yaml-flat/encode"
	"github.com/infinilabs/yaml-flat/ir"
)

// Renderer writes changes in a human-readable, optionally colored
// form: one line per change, prefixed with "+", "-" or "~". Replaced
// multiline strings are expanded into a line diff.
type Renderer struct {
	w     io.Writer
	plus  func(string, ...any) string
	minus func(string, ...any) string
	tilde func(string, ...any) string
}

func NewRenderer(w io.Writer, colored bool) *Renderer {
	r := &Renderer{
		w:     w,
		plus:  fmt.Sprintf,
		minus: fmt.Sprintf,
		tilde: fmt.Sprintf,
	}
	if colored {
		r.plus = color.GreenString
		r.minus = color.RedString
		r.tilde = color.YellowString
	}
	return r
}

func (r *Renderer) Render(changes []Change) error {
	for i := range changes {
		if err := r.renderChange(&changes[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderChange(c *Change) error {
	switch c.Kind {
	case Insert:
		return r.writeln(r.plus("+ %s: %s", c.Path, valueString(c.To)))
	case Delete:
		return r.writeln(r.minus("- %s: %s", c.Path, valueString(c.From)))
	case Replace:
		if isMultilineString(c.From) && isMultilineString(c.To) {
			if err := r.writeln(r.tilde("~ %s:", c.Path)); err != nil {
				return err
			}
			return r.renderLineDiff(c.From.String, c.To.String)
		}
		return r.writeln(r.tilde("~ %s: %s -> %s", c.Path, valueString(c.From), valueString(c.To)))
	default:
		return fmt.Errorf("unknown change kind %d", c.Kind)
	}
}

func (r *Renderer) renderLineDiff(from, to string) error {
	dmp := diffpatch.New()
	fromRunes, toRunes, lines := dmp.DiffLinesToRunes(from, to)
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	for _, d := range diffs {
		for line := range strings.Lines(d.Text) {
			line = strings.TrimSuffix(line, "\n")
			switch d.Type {
			case diffpatch.DiffInsert:
				if err := r.writeln(r.plus("  + %s", line)); err != nil {
					return err
				}
			case diffpatch.DiffDelete:
				if err := r.writeln(r.minus("  - %s", line)); err != nil {
					return err
				}
			case diffpatch.DiffEqual:
				if err := r.writeln("    " + line); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (r *Renderer) writeln(s string) error {
	_, err := io.WriteString(r.w, s+"\n")
	return err
}

// valueString renders a leaf for one-line display. Composite leaves
// (arrays) come out in flow style.
func valueString(node *ir.Node) string {
	if node.Type == ir.ArrayType {
		parts := make([]string, len(node.Values))
		for i, v := range node.Values {
			parts[i] = valueString(v)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return encode.MustString(node)
}

func isMultilineString(node *ir.Node) bool {
	return node != nil && node.Type == ir.StringType && strings.Contains(node.String, "\n")
}
