package gqlpager

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/samber/lo"
)

// TypeNamer names the wrapper type generated for a target type.
type TypeNamer func(targetTypeName string) string

// DefaultTypeName names the wrapper Paginated<Target>s.
func DefaultTypeName(targetTypeName string) string {
	return "Paginated" + targetTypeName + "s"
}

// TargetTypeName returns the name of the named type wrapped by t, unwrapping
// lists and non-null modifiers.
func TargetTypeName(t graphql.Type) (string, error) {
	named, err := NamedType(t)
	if err != nil {
		return "", err
	}

	return named.Name(), nil
}

// NamedType returns the named output type wrapped by t, unwrapping lists and
// non-null modifiers.
func NamedType(t graphql.Type) (graphql.Output, error) {
	for !lo.IsNil(t) {
		switch named := t.(type) {
		case *graphql.NonNull:
			t = named.OfType
		case *graphql.List:
			t = named.OfType
		case *graphql.Object, *graphql.Interface, *graphql.Union, *graphql.Scalar, *graphql.Enum:
			if t.Name() == "" {
				return nil, fmt.Errorf("%w: type %v has no name", ErrUnresolvedType, t)
			}
			return t, nil
		default:
			return nil, fmt.Errorf("%w: '%v' (%T) is not an output type", ErrUnresolvedType, t, t)
		}
	}

	return nil, fmt.Errorf("%w: nil type", ErrUnresolvedType)
}
