package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

type binaryCondition struct {
	field string
	op    string
	value interface{}
}

func (c *binaryCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s %s @%s", c.field, c.op, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("is_active", true) generates "is_active = @p0"
func Eq(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: "=", value: value}
}

// Neq creates a WHERE condition for inequality comparison.
func Neq(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: "!=", value: value}
}

// Gt creates a strictly-greater-than condition.
func Gt(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: ">", value: value}
}

// Gte creates an inclusive lower-bound condition.
func Gte(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: ">=", value: value}
}

// Lte creates an inclusive upper-bound condition.
func Lte(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: "<=", value: value}
}

// eqFoldCondition implements case-insensitive equality via LOWER().
type eqFoldCondition struct {
	field string
	value string
}

// EqFold creates a case-insensitive equality condition.
// Example: EqFold("brand", "Apple") generates "LOWER(brand) = @p0" with "apple".
func EqFold(field string, value string) Condition {
	return &eqFoldCondition{field: field, value: value}
}

func (c *eqFoldCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("LOWER(%s) = @%s", c.field, paramName)
	return sql, map[string]interface{}{paramName: strings.ToLower(c.value)}
}

// containsFoldCondition implements case-insensitive substring containment.
type containsFoldCondition struct {
	field string
	value string
}

// ContainsFold creates a case-insensitive substring condition.
// Example: ContainsFold("name", "iPhone") generates
// "LOWER(name) LIKE '%' || @p0 || '%'" with the lowercased, LIKE-escaped term.
func ContainsFold(field string, value string) Condition {
	return &containsFoldCondition{field: field, value: value}
}

func (c *containsFoldCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("LOWER(%s) LIKE '%%' || @%s || '%%'", c.field, paramName)
	return sql, map[string]interface{}{paramName: escapeLike(strings.ToLower(c.value))}
}

// escapeLike neutralizes LIKE metacharacters in a user-supplied term
// so the term is matched literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// orCondition implements a disjunction of nested conditions.
type orCondition struct {
	conditions []Condition
}

// Or creates a WHERE condition that is the disjunction of the given conditions.
// Example: Or(Eq("a", 1), Eq("b", 2)) generates "(a = @p0 OR b = @p1)".
func Or(conditions ...Condition) Condition {
	return &orCondition{conditions: conditions}
}

func (c *orCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	params := make(map[string]interface{})
	parts := make([]string, 0, len(c.conditions))
	for _, cond := range c.conditions {
		fragment, condParams := cond.SQL(paramIndex)
		parts = append(parts, fragment)
		for k, v := range condParams {
			params[k] = v
		}
		paramIndex += len(condParams)
	}
	return "(" + strings.Join(parts, " OR ") + ")", params
}

// IsNull creates a WHERE condition for NULL checks.
// Example: IsNull("sku") generates "sku IS NULL"
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

type isNullCondition struct {
	field string
}

func (c *isNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	return fmt.Sprintf("%s IS NULL", c.field), map[string]interface{}{}
}

// IsNotNull creates a WHERE condition for NOT NULL checks.
// Example: IsNotNull("sku") generates "sku IS NOT NULL"
func IsNotNull(field string) Condition {
	return &isNotNullCondition{field: field}
}

type isNotNullCondition struct {
	field string
}

func (c *isNotNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	return fmt.Sprintf("%s IS NOT NULL", c.field), map[string]interface{}{}
}
