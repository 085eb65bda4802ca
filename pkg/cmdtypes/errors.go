package cmdtypes

import "fmt"

// ConfigurationError reports an invalid combination of registration
// options, such as supplying both a mode allow-list and deny-list.
// The registration fails and the registry is left untouched.
type ConfigurationError struct {
	Option string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("invalid registration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid registration option %q: %s", e.Option, e.Reason)
}

// InvalidArityError reports a malformed explicit arity override:
// unparseable shorthand, a pair that is not a pair, or min > max.
type InvalidArityError struct {
	Spec   string
	Reason string
}

func (e *InvalidArityError) Error() string {
	return fmt.Sprintf("invalid arity spec %q: %s", e.Spec, e.Reason)
}
