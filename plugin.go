package gqlpager

import (
	"fmt"
	"maps"
	"slices"

	"github.com/graphql-go/graphql"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// PageInfoTypeName is the reserved name of the shared PageInfo object.
const PageInfoTypeName = "PageInfo"

// Plugin generates paginated query fields for a graphql-go schema. One Plugin
// should serve one schema: it owns the PageInfo type and the generated
// wrapper types shared by every paginated field.
type Plugin struct {
	defaultPageSize int
	maxPageSize     int
	typeNamer       TypeNamer
	logger          logrus.FieldLogger

	pageInfo *graphql.Object
	registry *typeRegistry
}

// New returns a Plugin with DefaultPageSize, no page size cap and DefaultTypeName.
func New() *Plugin {
	return &Plugin{
		defaultPageSize: DefaultPageSize,
		maxPageSize:     NoMaxPageSize,
		typeNamer:       DefaultTypeName,
		logger:          logrus.StandardLogger(),
		pageInfo:        newPageInfoType(),
		registry:        newTypeRegistry(),
	}
}

// WithDefaultPageSize sets the page size used when neither the caller nor the
// field config provides one. Non-positive values restore DefaultPageSize.
func (p *Plugin) WithDefaultPageSize(size int) *Plugin {
	if p == nil {
		p = New()
	}

	if size <= 0 {
		size = DefaultPageSize
	}
	p.defaultPageSize = size

	return p
}

// WithMaxPageSize caps requested page sizes. NoMaxPageSize (or any
// non-positive value) removes the cap.
func (p *Plugin) WithMaxPageSize(size int) *Plugin {
	if p == nil {
		p = New()
	}

	if size < 0 {
		size = NoMaxPageSize
	}
	p.maxPageSize = size

	return p
}

// WithTypeNamer changes how generated wrapper types are named. A nil namer
// restores DefaultTypeName.
func (p *Plugin) WithTypeNamer(namer TypeNamer) *Plugin {
	if p == nil {
		p = New()
	}

	if namer == nil {
		namer = DefaultTypeName
	}
	p.typeNamer = namer

	return p
}

// WithLogger sets the logger. A nil logger restores logrus.StandardLogger().
func (p *Plugin) WithLogger(logger logrus.FieldLogger) *Plugin {
	if p == nil {
		p = New()
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}
	p.logger = logger

	return p
}

// GetDefaultPageSize returns the plugin-wide default page size.
func (p *Plugin) GetDefaultPageSize() int {
	if p == nil {
		return DefaultPageSize
	}

	return p.defaultPageSize
}

// GetMaxPageSize returns the page size cap, NoMaxPageSize when unbounded.
func (p *Plugin) GetMaxPageSize() int {
	if p == nil {
		return NoMaxPageSize
	}

	return p.maxPageSize
}

// PageInfoType returns the PageInfo object shared by generated wrappers.
func (p *Plugin) PageInfoType() *graphql.Object {
	return p.pageInfo
}

// HasType reports whether the plugin already defines a type with this name.
// Types defined outside the plugin are not known here, see Install.
func (p *Plugin) HasType(name string) bool {
	return name == PageInfoTypeName || p.registry.has(name)
}

// Types returns PageInfo followed by every generated wrapper type.
func (p *Plugin) Types() []graphql.Type {
	objects := p.registry.objects()

	ret := make([]graphql.Type, 0, len(objects)+1)
	ret = append(ret, p.pageInfo)
	for _, obj := range objects {
		ret = append(ret, obj)
	}

	return ret
}

// Install adds the plugin types to a schema config. Types already listed in
// the config are skipped. Generated type names are reserved: Install returns
// ErrTypeConflict when a type reachable from the config shares a name with a
// plugin type but is a different object.
//
// Usage:
//
//	cfg := graphql.SchemaConfig{Query: query}
//	if err := plugin.Install(&cfg); err != nil {
//		return err
//	}
//	schema, err := graphql.NewSchema(cfg)
func (p *Plugin) Install(cfg *graphql.SchemaConfig) error {
	if cfg == nil {
		return nil
	}

	types := p.Types()
	if err := findTypeConflict(cfg, types); err != nil {
		return err
	}

	for _, t := range types {
		if !slices.Contains(cfg.Types, t) {
			cfg.Types = append(cfg.Types, t)
		}
	}

	return nil
}

// findTypeConflict walks every type reachable from cfg and reports the first
// one named like an owned type without being it.
func findTypeConflict(cfg *graphql.SchemaConfig, owned []graphql.Type) error {
	ownedByName := lo.KeyBy(owned, func(t graphql.Type) string { return t.Name() })
	visited := make(map[graphql.Type]struct{})

	var visit func(t graphql.Type) error
	visitFields := func(fields graphql.FieldDefinitionMap) error {
		for _, name := range slices.Sorted(maps.Keys(fields)) {
			field := fields[name]
			if err := visit(field.Type); err != nil {
				return err
			}
			for _, arg := range field.Args {
				if err := visit(arg.Type); err != nil {
					return err
				}
			}
		}
		return nil
	}

	visit = func(t graphql.Type) error {
		if lo.IsNil(t) {
			return nil
		}
		if _, ok := visited[t]; ok {
			return nil
		}
		visited[t] = struct{}{}

		switch typ := t.(type) {
		case *graphql.NonNull:
			return visit(typ.OfType)
		case *graphql.List:
			return visit(typ.OfType)
		}

		if own, ok := ownedByName[t.Name()]; ok && own != t {
			return fmt.Errorf("%w: schema already has another type named '%s'", ErrTypeConflict, t.Name())
		}

		switch typ := t.(type) {
		case *graphql.Object:
			for _, iface := range typ.Interfaces() {
				if err := visit(iface); err != nil {
					return err
				}
			}
			return visitFields(typ.Fields())
		case *graphql.Interface:
			return visitFields(typ.Fields())
		case *graphql.Union:
			for _, obj := range typ.Types() {
				if err := visit(obj); err != nil {
					return err
				}
			}
		case *graphql.InputObject:
			fields := typ.Fields()
			for _, name := range slices.Sorted(maps.Keys(fields)) {
				if err := visit(fields[name].Type); err != nil {
					return err
				}
			}
		}

		return nil
	}

	roots := []graphql.Type{cfg.Query, cfg.Mutation, cfg.Subscription}
	for _, t := range append(roots, cfg.Types...) {
		if err := visit(t); err != nil {
			return err
		}
	}

	return nil
}

func (p *Plugin) generatedTypeName(targetTypeName string, cfg FieldConfig) string {
	if cfg.GeneratedTypeName != "" {
		return cfg.GeneratedTypeName
	}

	return p.typeNamer(targetTypeName)
}

func newPageInfoType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        PageInfoTypeName,
		Description: "Pagination info",
		Fields: graphql.Fields{
			"page": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Int),
				Description: "Requested page, starting from 1",
			},
			"nextPage": &graphql.Field{
				Type:        graphql.Int,
				Description: "Next page, null on the last page",
			},
			"totalPages": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Int),
				Description: "Total number of pages",
			},
		},
	})
}
