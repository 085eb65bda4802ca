// Package arity derives the valid positional-argument range of a
// command handler from its declared signature, or from an explicit
// override. Downstream argument validation trusts these bounds, so
// the rules here must match the declared signatures exactly.
package arity

import "modshell/pkg/cmdtypes"

// Result is the resolved arity of a handler.
type Result struct {
	// SupportsCount reports whether the signature declares a count
	// parameter. Count is transparent to the Min/Max bounds.
	SupportsCount bool

	// Min and Max bound the accepted positional argument count. Max
	// is cmdtypes.Unbounded for a variadic handler.
	Min int
	Max int
}

// Resolve computes the arity of a handler. When explicit is non-nil
// it overrides the signature-derived bounds after validation; the
// signature still decides count support either way.
//
// Signature derivation counts every non-receiver, non-variadic
// parameter, treats parameters with defaults as optional, and
// excludes the count parameter from the maximum (its default already
// excludes it from the minimum, so the two adjustments cancel and
// count never shifts the bounds). A variadic trailing parameter is
// zero-or-more: it leaves Min alone, makes Max unbounded, and takes
// precedence over the count exclusion.
func Resolve(sig cmdtypes.Signature, explicit *cmdtypes.ArgSpec) (Result, error) {
	res := Result{SupportsCount: sig.HasCount()}

	if explicit != nil {
		if err := explicit.Validate(); err != nil {
			return Result{}, err
		}
		res.Min = explicit.Min
		res.Max = explicit.Max
		return res, nil
	}

	paramCount := 0
	defaultCount := 0
	for i, p := range sig.Params {
		if i == 0 && sig.Receiver {
			continue
		}
		// The variadic trailing parameter is zero-or-more and never a
		// fixed positional slot, so it contributes nothing to the
		// bounds.
		if sig.Variadic && i == len(sig.Params)-1 {
			continue
		}
		paramCount++
		if p.HasDefault {
			defaultCount++
		}
	}

	res.Min = paramCount - defaultCount
	switch {
	case sig.Variadic:
		res.Max = cmdtypes.Unbounded
	case res.SupportsCount:
		res.Max = paramCount - 1
	default:
		res.Max = paramCount
	}
	return res, nil
}
