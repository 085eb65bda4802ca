package cmdtypes

import "strings"

// CountParam is the parameter name that marks count support. A
// parameter with this exact name is assumed to carry a default and is
// excluded from positional-argument counting.
const CountParam = "count"

// Param describes one declared handler parameter.
type Param struct {
	Name string
	// HasDefault reports whether the parameter carries a default
	// value and can therefore be omitted by the caller.
	HasDefault bool
}

// Signature is the declared parameter signature of a handler. Go has
// no runtime access to parameter names or defaults, so handlers
// declare their signature explicitly at registration time instead of
// relying on introspection.
type Signature struct {
	// Name is the handler's declared name. Lowercased, it is the
	// fallback command name when the registration gives none.
	Name string

	// Doc is the handler's documentation. Only the first line feeds
	// the command description.
	Doc string

	// Receiver marks Params[0] as a receiver parameter bound to an
	// owning object. It is excluded from all argument counting.
	Receiver bool

	// Params are the declared parameters in order, including the
	// receiver (if any) and the count parameter (if any).
	Params []Param

	// Variadic marks a variable-length trailing parameter.
	Variadic bool
}

// CommandName returns the lowercased handler name.
func (s Signature) CommandName() string {
	return strings.ToLower(s.Name)
}

// HasCount reports whether a non-receiver parameter is named exactly
// CountParam.
func (s Signature) HasCount() bool {
	for i, p := range s.Params {
		if i == 0 && s.Receiver {
			continue
		}
		if p.Name == CountParam {
			return true
		}
	}
	return false
}

// Summary returns the first line of Doc, trimmed of surrounding
// whitespace with a single trailing period stripped. Empty when the
// handler has no documentation.
func (s Signature) Summary() string {
	if s.Doc == "" {
		return ""
	}
	line, _, _ := strings.Cut(s.Doc, "\n")
	line = strings.TrimSpace(line)
	return strings.TrimSuffix(line, ".")
}
