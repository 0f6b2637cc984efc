package gqlpager

import (
	"errors"
	"fmt"
	"slices"

	"github.com/graphql-go/graphql"
	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// FieldConfig describes a paginated field.
//
// Resolve is called with a context holding a *Pagination, see FromContext.
// It is expected to return a value shaped like the generated wrapper, usually
// a Page[T]:
//
//	Resolve: func(p graphql.ResolveParams) (interface{}, error) {
//		params, _ := gqlpager.ParamsFromContext(p.Context)
//		var users []User
//		var count int64
//		db.Model(&User{}).Count(&count)
//		params.Apply(db.Model(&User{})).Find(&users)
//		return gqlpager.NewPage(p.Context, users, count)
//	}
type FieldConfig struct {
	// Type target type of the paginated collection. Modifiers are ignored.
	Type graphql.Output
	// Args extra field arguments. "page", "pageSize" and "sort" are reserved.
	Args graphql.FieldConfigArgument
	// Resolve field resolver.
	Resolve graphql.FieldResolveFn

	Description       string
	DeprecationReason string

	// DefaultPageSize overrides the plugin default page size for this field.
	DefaultPageSize int
	// GeneratedTypeName overrides the generated wrapper type name for this field.
	GeneratedTypeName string

	// SortColumns enables the "sort" argument. Keys are the aliases accepted in
	// the argument, values are column names.
	SortColumns ColumnMapping
	// DefaultSort used when no "sort" argument is given.
	DefaultSort Orderings
}

func (c FieldConfig) validate(fieldName string) error {
	var result *multierror.Error

	if fieldName == "" {
		result = multierror.Append(result, errors.New("field name is empty"))
	}
	if lo.IsNil(c.Type) {
		result = multierror.Append(result, errors.New("type is nil"))
	}
	if c.Resolve == nil {
		result = multierror.Append(result, errors.New("resolve function is nil"))
	}
	if c.DefaultPageSize < 0 {
		result = multierror.Append(result, fmt.Errorf("negative default page size %d", c.DefaultPageSize))
	}
	if err := c.DefaultSort.validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("default sort: %w", err))
	}

	aliases := lo.Keys(c.SortColumns)
	slices.Sort(aliases)
	for _, alias := range aliases {
		err := OrderBy{Column: c.SortColumns[alias], Direction: DirectionASC}.validate()
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("sort column '%s': %w", alias, err))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w '%s': %w", ErrInvalidFieldConfig, fieldName, err)
	}

	return nil
}

// Field builds a paginated field named fieldName. The field's type is the
// generated wrapper of the named type behind cfg.Type, created on first use
// and reused afterwards. List and non-null modifiers of cfg.Type are dropped:
// results is always [Target]!.
func (p *Plugin) Field(fieldName string, cfg FieldConfig) (*graphql.Field, error) {
	if p == nil {
		return nil, fmt.Errorf("pagination plugin is nil")
	}

	err := cfg.validate(fieldName)
	if err != nil {
		return nil, err
	}

	target, err := NamedType(cfg.Type)
	if err != nil {
		return nil, fmt.Errorf("cannot build paginated field '%s': %w", fieldName, err)
	}
	targetTypeName := target.Name()

	typeName := p.generatedTypeName(targetTypeName, cfg)
	if typeName == PageInfoTypeName {
		return nil, fmt.Errorf("cannot build paginated field '%s': %w: '%s'", fieldName, ErrReservedTypeName, typeName)
	}

	wrapper, created, err := p.registry.getOrCreate(typeName, targetTypeName, func() *graphql.Object {
		return p.newWrapperType(typeName, fieldName, target)
	})
	if err != nil {
		return nil, fmt.Errorf("cannot build paginated field '%s': %w", fieldName, err)
	}

	log := p.logger.WithFields(logrus.Fields{
		"field":  fieldName,
		"target": targetTypeName,
		"type":   typeName,
	})
	if created {
		log.Debug("generated paginated type")
	} else {
		log.Debug("reusing paginated type")
	}

	pageSize := lo.Ternary(cfg.DefaultPageSize > 0, cfg.DefaultPageSize, p.defaultPageSize)
	pageSize = NormalizePageSizeMax(pageSize, p.maxPageSize)

	return &graphql.Field{
		Name:              fieldName,
		Type:              wrapper,
		Args:              p.fieldArgs(fieldName, cfg, pageSize),
		Resolve:           p.fieldResolver(fieldName, cfg, pageSize),
		Description:       cfg.Description,
		DeprecationReason: cfg.DeprecationReason,
	}, nil
}

// AddField builds a paginated field and registers it in fields.
func (p *Plugin) AddField(fields graphql.Fields, fieldName string, cfg FieldConfig) error {
	if fields == nil {
		return fmt.Errorf("cannot add paginated field '%s': fields map is nil", fieldName)
	}

	field, err := p.Field(fieldName, cfg)
	if err != nil {
		return err
	}

	if _, ok := fields[fieldName]; ok {
		p.logger.WithField("field", fieldName).Warn("paginated field replaces existing field")
	}
	fields[fieldName] = field

	return nil
}

// MustField is like Field but panics on error. Intended for static schemas.
func (p *Plugin) MustField(fieldName string, cfg FieldConfig) *graphql.Field {
	field, err := p.Field(fieldName, cfg)
	if err != nil {
		panic(err)
	}

	return field
}

func (p *Plugin) newWrapperType(typeName, fieldName string, target graphql.Output) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: typeName,
		Fields: graphql.Fields{
			"results": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(target)),
				Description: fmt.Sprintf("Collection of %s", fieldName),
			},
			"pageInfo": &graphql.Field{
				Type:        graphql.NewNonNull(p.pageInfo),
				Description: "Pagination information",
			},
		},
	})
}

func (p *Plugin) fieldArgs(fieldName string, cfg FieldConfig, pageSize int) graphql.FieldConfigArgument {
	args := make(graphql.FieldConfigArgument, len(cfg.Args)+3)
	for name, arg := range cfg.Args {
		args[name] = arg
	}

	reserved := []string{ArgPage, ArgPageSize}
	if len(cfg.SortColumns) > 0 {
		reserved = append(reserved, ArgSort)
	}
	for _, name := range reserved {
		if _, ok := cfg.Args[name]; ok {
			p.logger.WithFields(logrus.Fields{
				"field":    fieldName,
				"argument": name,
			}).Warn("argument overridden by pagination")
		}
	}

	args[ArgPage] = &graphql.ArgumentConfig{
		Type:         graphql.Int,
		DefaultValue: DefaultPage,
		Description:  "Page to return, starting from 1",
	}
	args[ArgPageSize] = &graphql.ArgumentConfig{
		Type:         graphql.Int,
		DefaultValue: pageSize,
		Description:  "Number of results per page",
	}
	if len(cfg.SortColumns) > 0 {
		aliases := lo.Keys(cfg.SortColumns)
		slices.Sort(aliases)
		args[ArgSort] = &graphql.ArgumentConfig{
			Type:        graphql.NewList(graphql.NewNonNull(graphql.String)),
			Description: fmt.Sprintf("Sort order, e.g. \"%s desc\" or \"-%s\". Columns: %v", aliases[0], aliases[0], aliases),
		}
	}

	return args
}

func (p *Plugin) fieldResolver(fieldName string, cfg FieldConfig, pageSize int) graphql.FieldResolveFn {
	opts := ArgOptions{
		DefaultPage:     DefaultPage,
		DefaultPageSize: pageSize,
		Sortable:        len(cfg.SortColumns) > 0,
	}

	return func(rp graphql.ResolveParams) (interface{}, error) {
		args, err := ParseArgs(rp.Args, opts)
		if err != nil {
			return nil, err
		}

		params, err := NewParams(args.Page, NormalizePageSizeMax(args.PageSize, p.maxPageSize))
		if err != nil {
			return nil, err
		}

		sort := cfg.DefaultSort
		if len(args.Sort) > 0 {
			sort, err = ParseSort(args.Sort, cfg.SortColumns)
			if err != nil {
				return nil, err
			}
		}
		params = params.WithSort(sort...)

		p.logger.WithFields(logrus.Fields{
			"field": fieldName,
			"page":  params.Page,
			"skip":  params.Skip,
			"take":  params.Take,
		}).Debug("resolving paginated field")

		rp.Context = WithPagination(rp.Context, &Pagination{Params: params})

		return cfg.Resolve(rp)
	}
}
