// Package gqlpager provides offset/limit pagination for graphql-go schemas.
//
// Overview
//
// A Plugin turns a plain object type into a paginated query field:
//   - a wrapper object named Paginated<Type>s (configurable) with a
//     "results" list and a "pageInfo" object is generated once per type;
//   - "page" and "pageSize" arguments are added to the field;
//   - the field's resolver receives a Pagination in its context carrying the
//     skip/take values and a CalculatePageInfo helper.
//
// Key concepts
//   - Plugin: owns the PageInfo type, the generated wrapper registry and the
//     defaults (page size, naming).
//   - FieldConfig: describes one paginated field and its resolver.
//   - Params: page/pageSize converted to skip/take, optionally with ordering.
//   - PageInfo: page, nextPage and totalPages computed from a total count.
//
// Data fetching stays with the field resolver. Params.Apply can hand the
// computed OFFSET/LIMIT/ORDER BY to a GORM query.
package gqlpager
