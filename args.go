package gqlpager

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ArgPage     = "page"
	ArgPageSize = "pageSize"
	ArgSort     = "sort"
)

// ArgOptions controls ParseArgs.
type ArgOptions struct {
	// DefaultPage used when "page" is omitted. Zero means DefaultPage.
	DefaultPage int
	// DefaultPageSize used when "pageSize" is omitted. Zero means DefaultPageSize.
	DefaultPageSize int
	// Sortable enables reading the "sort" argument.
	Sortable bool
}

// Args holds raw pagination arguments before conversion to Params.
type Args struct {
	Page     int
	PageSize int
	Sort     []string
}

// ParseArgs extracts pagination arguments from resolver args. Missing or
// null values fall back to the defaults in opts. Numbers may come as any
// integer type, float64 (JSON decoded variables) or numeric strings.
func ParseArgs(args map[string]any, opts ArgOptions) (Args, error) {
	ret := Args{
		Page:     opts.DefaultPage,
		PageSize: opts.DefaultPageSize,
	}

	if ret.Page == 0 {
		ret.Page = DefaultPage
	}
	if ret.PageSize == 0 {
		ret.PageSize = DefaultPageSize
	}

	var err error
	if v, ok := args[ArgPage]; ok && v != nil {
		ret.Page, err = toInt(v)
		if err != nil {
			return Args{}, fmt.Errorf("%w '%s': %w", ErrInvalidArgument, ArgPage, err)
		}
	}

	if v, ok := args[ArgPageSize]; ok && v != nil {
		ret.PageSize, err = toInt(v)
		if err != nil {
			return Args{}, fmt.Errorf("%w '%s': %w", ErrInvalidArgument, ArgPageSize, err)
		}
	}

	if v, ok := args[ArgSort]; ok && v != nil && opts.Sortable {
		ret.Sort, err = toStrings(v)
		if err != nil {
			return Args{}, fmt.Errorf("%w '%s': %w", ErrInvalidArgument, ArgSort, err)
		}
	}

	return ret, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("cannot use non-integer %v", n)
		}
		return int(n), nil
	case string:
		num, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q: %w", n, err)
		}
		return num, nil
	default:
		return 0, fmt.Errorf("cannot cast %v (%T) to int", v, v)
	}
}

func toStrings(v any) ([]string, error) {
	switch s := v.(type) {
	case string:
		return []string{s}, nil
	case []string:
		return s, nil
	case []any:
		ret := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("cannot cast %v (%T) to string", item, item)
			}
			ret = append(ret, str)
		}
		return ret, nil
	default:
		return nil, fmt.Errorf("cannot cast %v (%T) to a list of strings", v, v)
	}
}
