package miischeme

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/xiam/miischeme/errs"
)

var envID = uint64(0)

// Environment is a table of bindings chained to an optional parent.
// Lookups that miss locally continue in the parent; definitions and
// removals only ever touch the local table.
//
// An Environment is not safe for concurrent use. Any number of children may
// share the same parent.
type Environment struct {
	id   uint64
	name string

	parent *Environment
	vars   map[string]*Value
}

func newEnvironment(parent *Environment) *Environment {
	env := &Environment{
		id:     atomic.AddUint64(&envID, 1),
		parent: parent,
		vars:   make(map[string]*Value),
	}
	logger.Printf("*ENV: %v -> %v", parent, env)
	return env
}

// NewEnvironment creates an empty environment with no parent.
func NewEnvironment() *Environment {
	return newEnvironment(nil)
}

// NewChildEnvironment creates an empty environment whose lookups fall back
// to parent.
func NewChildEnvironment(parent *Environment) *Environment {
	return newEnvironment(parent)
}

// Name sets a label used when logging.
func (env *Environment) Name(name string) *Environment {
	env.name = name
	return env
}

// Parent returns the enclosing environment, nil for a root.
func (env *Environment) Parent() *Environment {
	return env.parent
}

// Define binds name to value in this environment, replacing any previous
// local binding. Ancestors are never modified.
// The environment must not be nil.
func (env *Environment) Define(name string, value *Value) {
	if value == nil {
		value = Nil
	}
	logger.Printf("env: %v -- %v -> %v", env, name, value)
	env.vars[name] = value
}

// Lookup returns the value bound to name in this environment or the
// closest ancestor that binds it.
func (env *Environment) Lookup(name string) (*Value, error) {
	for e := env; e != nil; e = e.parent {
		if value, ok := e.vars[name]; ok {
			logger.Printf("env: %v <- %q: %v", env, name, value)
			return value, nil
		}
	}
	return nil, errs.Undefined(name)
}

// Remove deletes the local binding of name, if any. A binding of the same
// name in an ancestor is left alone, and becomes visible to later lookups.
func (env *Environment) Remove(name string) {
	logger.Printf("env: %v -- %v removed", env, name)
	delete(env.vars, name)
}

// Names returns the locally bound names, sorted.
func (env *Environment) Names() []string {
	names := make([]string, 0, len(env.vars))
	for name := range env.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (env *Environment) String() string {
	return fmt.Sprintf("[%v]: %q (%p)", env.id, env.name, env)
}
