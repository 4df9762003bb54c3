package mailcheck

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Registry holds named validators behind the same contract gate as the
// factory. Registration performs the capability check once; lookups never
// fail with contract errors. Safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]Validator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{validators: make(map[string]Validator)}
}

// Register admits a candidate under the given name. The candidate passes
// through the same check as FromAny, so a value without a conforming
// IsValid(string) bool is rejected with ErrContractViolation at registration
// time, never later during validation.
func (r *Registry) Register(name string, candidate any) error {
	v, err := FromAny(candidate)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.validators[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateValidator, name)
	}
	r.validators[name] = v
	return nil
}

// Get resolves a registered validator by name.
func (r *Registry) Get(name string) (Validator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.validators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}
	return v, nil
}

// Has reports whether a validator is registered under the given name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.validators[name]
	return ok
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.validators)
	slices.Sort(names)
	return names
}

// Len returns the number of registered validators.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.validators)
}

// Evaluate runs every registered validator against the same input and
// returns a name-to-verdict report.
func (r *Registry) Evaluate(email string) map[string]bool {
	r.mu.RLock()
	snapshot := maps.Clone(r.validators)
	r.mu.RUnlock()

	return Evaluate(snapshot, email)
}
