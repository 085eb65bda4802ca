// Package commands owns the process-wide command registry of
// modshell. Handlers are declared as named commands during package
// initialization; the parser and dispatcher read the resulting
// records but never mutate them.
package commands

import (
	"fmt"
	"sort"
	"sync"

	"modshell/pkg/cmdtypes"
)

// Registry maps command names to command records. Registration is
// expected to finish during startup before lookups begin; the lock
// additionally makes dynamic re-registration safe.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*cmdtypes.Command

	// strict turns duplicate-name registration into an error instead
	// of the default silent overwrite.
	strict bool
}

// NewRegistry creates an empty registry with last-write-wins
// duplicate handling.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*cmdtypes.Command)}
}

// NewStrictRegistry creates an empty registry that rejects duplicate
// names.
func NewStrictRegistry() *Registry {
	r := NewRegistry()
	r.strict = true
	return r
}

// insert adds one record under every given name, atomically. In
// strict mode no name is inserted if any collides.
func (r *Registry) insert(names []string, cmd *cmdtypes.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.strict {
		for _, name := range names {
			if _, exists := r.commands[name]; exists {
				return fmt.Errorf("command %s already registered", name)
			}
		}
	}
	for _, name := range names {
		r.commands[name] = cmd
	}
	return nil
}

// Get retrieves a command record by exact name.
func (r *Registry) Get(name string) (*cmdtypes.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// IsValidCommand reports whether a name is registered.
func (r *Registry) IsValidCommand(name string) bool {
	_, exists := r.Get(name)
	return exists
}

// Names returns every registered name, sorted, including aliases and
// hidden commands.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every distinct command record, sorted by primary name.
// Records registered under several names appear once.
func (r *Registry) All() []*cmdtypes.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[*cmdtypes.Command]bool, len(r.commands))
	cmds := make([]*cmdtypes.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		if !seen[cmd] {
			seen[cmd] = true
			cmds = append(cmds, cmd)
		}
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

// Visible returns All minus hidden commands, for user-facing
// listings.
func (r *Registry) Visible() []*cmdtypes.Command {
	all := r.All()
	visible := make([]*cmdtypes.Command, 0, len(all))
	for _, cmd := range all {
		if !cmd.Hidden {
			visible = append(visible, cmd)
		}
	}
	return visible
}

// Len returns the number of registered names, aliases included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// GlobalRegistry is the process-wide registry. Commands register
// themselves with it during initialization.
var GlobalRegistry = NewRegistry()
