package gqlpager

import (
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"
)

func Test_DefaultTypeName(t *testing.T) {
	require.Equal(t, "PaginatedUsers", DefaultTypeName("User"))
	require.Equal(t, "PaginatedPosts", DefaultTypeName("Post"))
}

func Test_TargetTypeName(t *testing.T) {
	user := graphql.NewObject(graphql.ObjectConfig{
		Name:   "User",
		Fields: graphql.Fields{"id": &graphql.Field{Type: graphql.ID}},
	})

	tests := []struct {
		name string
		in   graphql.Type
		want string
		ok   bool
	}{
		{"object", user, "User", true},
		{"non null", graphql.NewNonNull(user), "User", true},
		{"list of non null", graphql.NewList(graphql.NewNonNull(user)), "User", true},
		{"scalar", graphql.String, "String", true},
		{"nil", nil, "", false},
		{"typed nil", (*graphql.Object)(nil), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TargetTypeName(tt.in)
			if !tt.ok {
				require.ErrorIs(t, err, ErrUnresolvedType)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_NamedType(t *testing.T) {
	user := graphql.NewObject(graphql.ObjectConfig{
		Name:   "User",
		Fields: graphql.Fields{"id": &graphql.Field{Type: graphql.ID}},
	})

	got, err := NamedType(graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(user))))
	require.NoError(t, err)
	require.Same(t, user, got)

	got, err = NamedType(graphql.Int)
	require.NoError(t, err)
	require.Equal(t, graphql.Int, got)

	_, err = NamedType(graphql.NewList(nil))
	require.ErrorIs(t, err, ErrUnresolvedType)

	input := graphql.NewInputObject(graphql.InputObjectConfig{
		Name:   "UserFilter",
		Fields: graphql.InputObjectConfigFieldMap{"id": &graphql.InputObjectFieldConfig{Type: graphql.ID}},
	})
	_, err = NamedType(input)
	require.ErrorIs(t, err, ErrUnresolvedType)
}
