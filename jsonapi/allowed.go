package jsonapi

import (
	"fmt"
	"slices"
	"strings"
)

// AllowedTypes is the set of resource type names an endpoint accepts as
// primary data: either a single name, or several names for polymorphic
// endpoints exposing an inheritance hierarchy under one collection.
type AllowedTypes struct {
	names       []string
	polymorphic bool
}

// SingleType binds an endpoint to exactly one resource type.
func SingleType(name string) AllowedTypes {
	return AllowedTypes{names: []string{name}}
}

// PolymorphicTypes binds an endpoint to any of the given resource types.
func PolymorphicTypes(names ...string) AllowedTypes {
	return AllowedTypes{names: slices.Clone(names), polymorphic: true}
}

// Contains reports whether the declared type is accepted.
func (a AllowedTypes) Contains(declared string) bool {
	return slices.Contains(a.names, declared)
}

// IsZero reports whether the endpoint is not bound to any resource type.
func (a AllowedTypes) IsZero() bool {
	return len(a.names) == 0
}

// String renders the set the way it appears in conflict error messages:
// the bare name for a single type, a disjunctive list otherwise.
func (a AllowedTypes) String() string {
	if a.polymorphic {
		return fmt.Sprintf("one of [%s]", strings.Join(a.names, ", "))
	}

	if len(a.names) == 0 {
		return ""
	}

	return a.names[0]
}
