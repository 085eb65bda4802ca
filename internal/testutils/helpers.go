// Package testutils provides shared fixtures and helpers for
// modshell tests.
package testutils

import (
	"github.com/charmbracelet/x/ansi"

	"modshell/pkg/cmdtypes"
)

// Sig builds a signature from parameter names. Names ending in "="
// carry a default; the name stored on the parameter has the marker
// stripped. Example: Sig("open", "Open a URL.", "url", "count=").
func Sig(name, doc string, params ...string) cmdtypes.Signature {
	return cmdtypes.Signature{
		Name:   name,
		Doc:    doc,
		Params: Params(params...),
	}
}

// VariadicSig builds a signature whose last parameter is variadic.
func VariadicSig(name, doc string, params ...string) cmdtypes.Signature {
	sig := Sig(name, doc, params...)
	sig.Variadic = true
	return sig
}

// MethodSig builds a signature whose first parameter is a receiver.
func MethodSig(name, doc string, params ...string) cmdtypes.Signature {
	sig := Sig(name, doc, params...)
	sig.Receiver = true
	return sig
}

// Params converts "name" / "name=" shorthand into parameter descriptors.
func Params(names ...string) []cmdtypes.Param {
	params := make([]cmdtypes.Param, 0, len(names))
	for _, n := range names {
		p := cmdtypes.Param{Name: n}
		if len(n) > 0 && n[len(n)-1] == '=' {
			p.Name = n[:len(n)-1]
			p.HasDefault = true
		}
		params = append(params, p)
	}
	return params
}

// NopHandler is a handler that accepts anything and does nothing.
func NopHandler(_ []string, _ int) error {
	return nil
}

// StripANSI removes terminal escape sequences from styled output so
// tests can assert on plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
