package gqlpager

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the sort direction for the requested dataset.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (o Direction) Valid() bool {
	return o == DirectionASC || o == DirectionDESC
}

// Reverse returns the opposite direction.
func (o Direction) Reverse() Direction {
	switch o {
	case DirectionASC:
		return DirectionDESC
	case DirectionDESC:
		return DirectionASC
	default:
		panic(fmt.Errorf("cannot reverse direction '%s'", o))
	}
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction Direction
	}

	ColumnAlias = string

	// ColumnMapping maps aliases accepted in the "sort" argument to column
	// names. Use fully qualified names when bare ones could be ambiguous.
	ColumnMapping = map[ColumnAlias]string
)

var _availableColumnNameSymbols = append([]rune("_.'`\""), lo.AlphanumericCharset...)

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	// Column names are inlined into ORDER BY, so only a safe charset passes.
	if o.Column == "" || !lo.Every(_availableColumnNameSymbols, []rune(o.Column)) {
		return fmt.Errorf("ordering column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// ToSQLSlice converts Orderings to a slice of strings in the form
// "<order_column> <order_direction>" suitable for SQL query builders.
//
// Example: for Orderings: [{"a", "ASC"}, {"b", "DESC"}] returns ["a ASC", "b DESC"].
func (o Orderings) ToSQLSlice() []string {
	ret := make([]string, 0, len(o))
	for _, ordering := range o {
		ret = append(ret, fmt.Sprintf("%s %s", ordering.Column, ordering.Direction))
	}

	return ret
}

// ToSQL converts Orderings to a single string
// "<order_column_1> <order_direction_1>, <order_column_2> <order_direction_2>".
//
// Usage:
//
//	query := fmt.Sprintf("SELECT * FROM table ORDER BY %s", orderings.ToSQL())
func (o Orderings) ToSQL() string {
	return strings.Join(o.ToSQLSlice(), ", ")
}

// Apply applies the ordering to a gorm query.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(o.ToSQL())
}

func (o Orderings) validate() error {
	var err error
	for _, ordering := range o {
		err = ordering.validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// ParseSort builds Orderings from a list of strings in the format
// "column asc|desc". A bare "column" sorts ascending and "-column" sorts in
// the reversed (descending) direction. Column aliases are resolved via
// ColumnMapping. Returns an error if an alias is not found in the mapping.
func ParseSort(stringsOrderings []string, columnMapping ColumnMapping) (Orderings, error) {
	ret := make(Orderings, 0, len(stringsOrderings))
	aliases := lo.Keys(columnMapping)

	for _, stringOrdering := range stringsOrderings {
		columnAlias, direction, err := parseSortString(stringOrdering)
		if err != nil {
			return nil, err
		}

		columnName := columnMapping[columnAlias]
		if columnName == "" {
			return nil, fmt.Errorf("%w: invalid column alias '%s'. closest: '%s'",
				ErrInvalidSortArgument, columnAlias, closestAlias(columnAlias, aliases))
		}

		orderBy := OrderBy{
			Column:    columnName,
			Direction: direction,
		}
		if err := orderBy.validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSortArgument, err)
		}

		// A repeated column keeps its latest direction and position.
		ret = lo.Reject(ret, func(processed OrderBy, _ int) bool {
			return processed.Column == orderBy.Column
		})
		ret = append(ret, orderBy)
	}

	return ret, nil
}

func parseSortString(stringOrdering string) (ColumnAlias, Direction, error) {
	cutStringOrdering := strings.Fields(stringOrdering)
	switch len(cutStringOrdering) {
	case 1:
		columnAlias, reversed := strings.CutPrefix(cutStringOrdering[0], "-")
		if columnAlias == "" {
			break
		}
		if reversed {
			return columnAlias, DirectionASC.Reverse(), nil
		}
		return columnAlias, DirectionASC, nil
	case 2:
		return cutStringOrdering[0], Direction(strings.ToUpper(cutStringOrdering[1])), nil
	}

	return "", "", fmt.Errorf("%w: invalid ordering string format '%s'", ErrInvalidSortArgument, stringOrdering)
}

func closestAlias(input ColumnAlias, dataSet []ColumnAlias) ColumnAlias {
	minDist := math.MaxInt
	closest := ""

	for _, dataSetAlias := range dataSet {
		dist := levenshtein([]rune(dataSetAlias), []rune(input))
		// Ties resolve alphabetically so the hint does not depend on map order.
		if dist < minDist || (dist == minDist && dataSetAlias < closest) {
			minDist = dist
			closest = dataSetAlias
		}
	}

	return closest
}
