// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/interp"
)

// DefaultRegistry holds every built-in utility.
var DefaultRegistry = BuildDefaultRegistry()

// Registry manages the mapping of command names to their implementations.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// BuildDefaultRegistry returns a new Registry with all built-in utilities registered.
func BuildDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(newCatCommand())
	r.Register(newGrepCommand())
	return r
}

// Register adds a command to the registry.
// Panics if a command with the same name is already registered.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := cmd.Name()
	if name == "" {
		panic("uroot: cannot register command with empty name")
	}
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("uroot: command %q already registered", name))
	}
	r.commands[name] = cmd
}

// Lookup retrieves a command by name.
// Returns nil, false if the command is not registered.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the names of all registered commands in sorted order.
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

// Run executes a command by name with the given context and arguments.
// Returns an error if the command is not found.
// The args slice should include the command name as args[0].
func (r *Registry) Run(ctx context.Context, name string, args []string) error {
	cmd, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("[uroot] %s: command not found", name)
	}
	return cmd.Run(ctx, args)
}

// ExecHandler returns mvdan/sh exec middleware that runs registered commands
// in-process and passes every other command to next.
//
// A command failure becomes the shell exit status of that command; it is not
// an interpreter error and never falls back to a system binary.
func (r *Registry) ExecHandler(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		if len(args) == 0 {
			return next(ctx, args)
		}
		cmd, found := r.Lookup(args[0])
		if !found {
			return next(ctx, args)
		}

		err := cmd.Run(WithHandlerContext(ctx, interpHandlerContext(ctx)), args)
		if err == nil {
			return nil
		}
		log.FromContext(ctx).Debug("builtin failed", "cmd", args[0], "err", err)
		return interp.NewExitStatus(ExitCodeOf(err).Status())
	}
}
