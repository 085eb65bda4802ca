// Package cmdtypes defines the shared types of the modshell command
// registration system: the command record, the handler signature
// descriptor, arity specifications, mode constraints and the error
// taxonomy. It has no dependencies so that both the registration core
// and external consumers (parser, dispatcher, completion) can share it.
package cmdtypes

// Unbounded marks a command that accepts any number of trailing
// positional arguments.
const Unbounded = -1

// MaxSplit values understood by the parser when it tokenizes raw
// input for a command.
const (
	// SplitAll splits the input without limit.
	SplitAll = -1
	// NoSplit passes the input through as a single argument.
	NoSplit = 0
)

// HandlerFunc is the callable stored on a command record. The
// dispatcher invokes it with the validated positional arguments and
// the numeric count (0 when the user gave none). The registration
// core stores handlers as-is and never calls them.
type HandlerFunc func(args []string, count int) error

// Command is the immutable record built by registration. The
// dispatcher trusts MinArgs/MaxArgs to validate user input before the
// handler runs, so these bounds must come from the arity resolver or
// an explicit override, never be guessed.
type Command struct {
	// Name is the primary command name, lowercase and unique per
	// registry.
	Name string `yaml:"name"`

	// Aliases are additional names resolving to this same record, in
	// declaration order.
	Aliases []string `yaml:"aliases,omitempty"`

	// MinArgs and MaxArgs bound the accepted positional argument
	// count. MaxArgs may be Unbounded.
	MinArgs int `yaml:"min_args"`
	MaxArgs int `yaml:"max_args"`

	// SupportsCount reports whether the handler accepts a numeric
	// repeat count. The count is not a positional argument.
	SupportsCount bool `yaml:"supports_count"`

	// MaxSplit is the maximum number of split operations applied to
	// raw input: SplitAll, NoSplit, or n>0 for at most n splits.
	MaxSplit int `yaml:"max_split"`

	// Hidden excludes the command from user-facing listings.
	Hidden bool `yaml:"hidden,omitempty"`

	// Description is the first line of the handler's documentation,
	// trimmed, with a single trailing period stripped. Empty when the
	// handler has no documentation.
	Description string `yaml:"description"`

	// Completion lists completion-category identifiers for the
	// command's arguments, in argument order.
	Completion []string `yaml:"completion,omitempty"`

	// Modes allow-lists the modes the command is valid in; NotModes
	// deny-lists them. At most one of the two is set.
	Modes    []Mode `yaml:"modes,omitempty"`
	NotModes []Mode `yaml:"not_modes,omitempty"`

	// Instance is a dotted reference path identifying the object the
	// handler is bound to at dispatch time. Resolution is deferred;
	// the core treats it as an opaque string.
	Instance string `yaml:"instance,omitempty"`

	// Handler is the registered callable, stored unmodified.
	Handler HandlerFunc `yaml:"-"`
}

// AllNames returns the primary name followed by the aliases.
func (c *Command) AllNames() []string {
	names := make([]string, 0, len(c.Aliases)+1)
	names = append(names, c.Name)
	names = append(names, c.Aliases...)
	return names
}
