// Package codegen renders the canonical hand table as Go source.
package codegen

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/lox/pfrange/poker"
)

const header = "// Code generated by pfrange gen-table. DO NOT EDIT.\n\n"

// Table renders poker.Enumerate as a gofmt'd Go file in package pkg.
//
// For package poker itself the output is the unexported canonicalHands array
// that backs poker.CanonicalHands. Any other package gets an exported
// CanonicalHands slice built from poker.NewHand calls.
func Table(pkg string) ([]byte, error) {
	if pkg == "" {
		return nil, fmt.Errorf("package name is required")
	}

	var sb strings.Builder
	sb.WriteString(header)
	fmt.Fprintf(&sb, "package %s\n\n", pkg)

	hands := poker.Enumerate()
	if pkg == "poker" {
		sb.WriteString("var canonicalHands = [TableSize]Hand{\n")
		for _, h := range hands {
			fmt.Fprintf(&sb, "\t{high: %#v, low: %#v, suit: %#v},\n", h.High(), h.Low(), h.Suitedness())
		}
	} else {
		sb.WriteString("import \"github.com/lox/pfrange/poker\"\n\n")
		sb.WriteString("// CanonicalHands lists every starting hand in canonical order.\n")
		sb.WriteString("var CanonicalHands = []poker.Hand{\n")
		for _, h := range hands {
			fmt.Fprintf(&sb, "\t%#v,\n", h)
		}
	}
	sb.WriteString("}\n")

	src, err := format.Source([]byte(sb.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to format generated table: %w", err)
	}
	return src, nil
}
