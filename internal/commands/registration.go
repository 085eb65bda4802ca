package commands

import (
	"modshell/internal/arity"
	"modshell/pkg/cmdtypes"
)

// options collects the declaration-time settings of a registration.
// The zero value plus defaults() is a valid configuration: derived
// name, derived arity, unlimited splitting, visible in every mode.
type options struct {
	instance   string
	names      []string
	nargs      *cmdtypes.ArgSpec
	nargsSpec  string
	maxSplit   int
	hide       bool
	completion []string
	modes      []cmdtypes.Mode
	notModes   []cmdtypes.Mode
}

func defaults() options {
	return options{maxSplit: cmdtypes.SplitAll}
}

// Option configures a single registration.
type Option func(*options)

// WithInstance sets the dotted reference path of the object the
// handler is bound to at dispatch time.
func WithInstance(path string) Option {
	return func(o *options) { o.instance = path }
}

// WithName registers the command under the given names instead of
// the handler's own name. The first name is the primary one.
func WithName(names ...string) Option {
	return func(o *options) { o.names = names }
}

// WithNArgs overrides the signature-derived arity.
func WithNArgs(spec cmdtypes.ArgSpec) Option {
	return func(o *options) { o.nargs = &spec }
}

// WithNArgsShorthand overrides the arity using the legacy shorthand
// understood by cmdtypes.ParseArgSpec ("?", "+", "*", "N", "N,M").
func WithNArgsShorthand(spec string) Option {
	return func(o *options) { o.nargsSpec = spec }
}

// WithMaxSplit limits how many times raw input is split before the
// arguments are produced: cmdtypes.NoSplit, or n>0 for at most n
// splits. The default is cmdtypes.SplitAll.
func WithMaxSplit(n int) Option {
	return func(o *options) { o.maxSplit = n }
}

// Hidden excludes the command from user-facing listings.
func Hidden() Option {
	return func(o *options) { o.hide = true }
}

// WithCompletion sets the completion-category identifiers for the
// command's arguments.
func WithCompletion(categories ...string) Option {
	return func(o *options) { o.completion = categories }
}

// InModes allow-lists the modes the command is valid in. Mutually
// exclusive with NotInModes.
func InModes(modes ...cmdtypes.Mode) Option {
	return func(o *options) { o.modes = modes }
}

// NotInModes deny-lists the modes the command is invalid in.
// Mutually exclusive with InModes.
func NotInModes(modes ...cmdtypes.Mode) Option {
	return func(o *options) { o.notModes = modes }
}

// Registrar registers one handler under a previously built set of
// options and returns the handler unchanged. Registration is pure
// bookkeeping: the handler is never wrapped or intercepted.
type Registrar func(sig cmdtypes.Signature, handler cmdtypes.HandlerFunc) (cmdtypes.HandlerFunc, error)

// Registration builds a registrar bound to this registry. Typical
// declaration-time use:
//
//	registrar := reg.Registration(commands.WithName("q", "quit"))
//	handler, err := registrar(sig, quitHandler)
func (r *Registry) Registration(opts ...Option) Registrar {
	o := defaults()
	for _, opt := range opts {
		opt(&o)
	}

	return func(sig cmdtypes.Signature, handler cmdtypes.HandlerFunc) (cmdtypes.HandlerFunc, error) {
		cmd, err := build(o, sig, handler)
		if err != nil {
			return handler, err
		}
		if err := r.insert(cmd.AllNames(), cmd); err != nil {
			return handler, err
		}
		return handler, nil
	}
}

// build validates the options against the signature and assembles the
// command record. The registry is untouched on failure.
func build(o options, sig cmdtypes.Signature, handler cmdtypes.HandlerFunc) (*cmdtypes.Command, error) {
	if len(o.modes) > 0 && len(o.notModes) > 0 {
		return nil, &cmdtypes.ConfigurationError{
			Option: "modes",
			Reason: "only an allow-list or a deny-list of modes can be given, not both",
		}
	}
	if o.nargs != nil && o.nargsSpec != "" {
		return nil, &cmdtypes.ConfigurationError{
			Option: "nargs",
			Reason: "arity given both as spec and as shorthand",
		}
	}

	names := o.names
	if len(names) == 0 {
		name := sig.CommandName()
		if name == "" {
			return nil, &cmdtypes.ConfigurationError{
				Option: "name",
				Reason: "no name given and the handler signature declares none",
			}
		}
		names = []string{name}
	}

	explicit := o.nargs
	if o.nargsSpec != "" {
		spec, err := cmdtypes.ParseArgSpec(o.nargsSpec)
		if err != nil {
			return nil, err
		}
		explicit = &spec
	}

	res, err := arity.Resolve(sig, explicit)
	if err != nil {
		return nil, err
	}

	return &cmdtypes.Command{
		Name:          names[0],
		Aliases:       names[1:],
		MinArgs:       res.Min,
		MaxArgs:       res.Max,
		SupportsCount: res.SupportsCount,
		MaxSplit:      o.maxSplit,
		Hidden:        o.hide,
		Description:   sig.Summary(),
		Completion:    o.completion,
		Modes:         o.modes,
		NotModes:      o.notModes,
		Instance:      o.instance,
		Handler:       handler,
	}, nil
}

// Registration builds a registrar bound to the global registry.
func Registration(opts ...Option) Registrar {
	return GlobalRegistry.Registration(opts...)
}

// MustRegister registers a handler with the global registry and
// panics on failure. Intended for package init functions, where a
// bad declaration should abort startup.
func MustRegister(sig cmdtypes.Signature, handler cmdtypes.HandlerFunc, opts ...Option) cmdtypes.HandlerFunc {
	h, err := Registration(opts...)(sig, handler)
	if err != nil {
		panic("commands: " + err.Error())
	}
	return h
}
