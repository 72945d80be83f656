// Package render turns symbolic results into the display strings an
// exercise template refers to by @name.
//
// Rendering happens once, when an instance is accepted. Templates are
// filled by an external layer that does no math of its own; Fill here
// exists for previews and tests.
package render

import (
	"regexp"
	"sort"
	"strings"
)

// LaTeXer is anything with a LaTeX rendering. *symbolic.Num, *symbolic.Poly,
// symbolic.Surd and every symbolic.Expr satisfy it.
type LaTeXer interface {
	LaTeX() string
}

// Fields maps placeholder names to rendered values.
type Fields map[string]string

// Set stores the LaTeX of v under name.
func (f Fields) Set(name string, v LaTeXer) { f[name] = v.LaTeX() }

// SetText stores s verbatim.
func (f Fields) SetText(name, s string) { f[name] = s }

// SetList stores the LaTeX of vs joined with ", ".
func (f Fields) SetList(name string, vs ...LaTeXer) {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.LaTeX()
	}
	f[name] = strings.Join(parts, ", ")
}

// Clone returns an independent copy.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Names returns the keys in sorted order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Equation renders "lhs = v", e.g. y = x + 2.
func Equation(lhs string, v LaTeXer) string { return lhs + " = " + v.LaTeX() }

var placeholder = regexp.MustCompile(`@([A-Za-z_][A-Za-z0-9_]*)`)

// Placeholders returns the distinct @name tokens of template in order of
// first appearance, without the @.
func Placeholders(template string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholder.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Missing lists placeholders of template that fields has no value for.
func Missing(template string, fields Fields) []string {
	var missing []string
	for _, name := range Placeholders(template) {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Fill replaces every @name with its field value. Longer names are
// substituted first so @x1 never matches inside @x10. Unknown tokens are
// left as they are.
func Fill(template string, fields Fields) string {
	names := fields.Names()
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, "@"+name, fields[name])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
