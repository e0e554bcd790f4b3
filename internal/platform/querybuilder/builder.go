package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition renders a SQL fragment, binding its values as $N placeholders.
type Condition interface {
	appendSQL(buf *strings.Builder, args *[]any, argIndex *int)
}

type comparisonCondition struct {
	column   string
	operator string
	value    any
}

func Eq(column string, value any) Condition {
	return comparisonCondition{column: column, operator: "=", value: value}
}

func Gte(column string, value any) Condition {
	return comparisonCondition{column: column, operator: ">=", value: value}
}

func Lte(column string, value any) Condition {
	return comparisonCondition{column: column, operator: "<=", value: value}
}

// ILike matches column case-insensitively against value as a substring.
// LIKE metacharacters inside value are escaped.
func ILike(column, value string) Condition {
	return comparisonCondition{column: column, operator: "ILIKE", value: "%" + escapeLike(value) + "%"}
}

func (c comparisonCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(c.column)
	buf.WriteString(" ")
	buf.WriteString(c.operator)
	buf.WriteString(" ")
	bind(buf, args, argIndex, c.value)
}

type betweenCondition struct {
	column string
	low    any
	high   any
}

// Between is inclusive on both ends.
func Between(column string, low, high any) Condition {
	return betweenCondition{column: column, low: low, high: high}
}

func (c betweenCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(c.column)
	buf.WriteString(" BETWEEN ")
	bind(buf, args, argIndex, c.low)
	buf.WriteString(" AND ")
	bind(buf, args, argIndex, c.high)
}

type exprCondition struct {
	expr string
	args []any
}

// Expr is a raw fragment; each '?' is replaced by the next arg as a placeholder.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(rewritePlaceholders(c.expr, c.args, args, argIndex))
}

type commonTable struct {
	name string
	body Condition
}

type SelectBuilder struct {
	with    []commonTable
	columns []string
	table   string
	where   []Condition
	groupBy []string
	having  []Condition
	orderBy []string
	limit   int
	offset  int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

// With adds a common table expression. body is usually another *SelectBuilder
// or an Expr; placeholders are numbered across the whole statement.
func (b *SelectBuilder) With(name string, body Condition) *SelectBuilder {
	b.with = append(b.with, commonTable{name: name, body: body})
	return b
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) GroupBy(parts ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, parts...)
	return b
}

func (b *SelectBuilder) Having(conditions ...Condition) *SelectBuilder {
	b.having = append(b.having, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) Offset(offset int) *SelectBuilder {
	b.offset = offset
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if err := b.validate(); err != nil {
		return "", nil, err
	}

	var buf strings.Builder
	args := make([]any, 0, len(b.where)+len(b.having))
	argIndex := 1
	b.appendSQL(&buf, &args, &argIndex)

	return buf.String(), args, nil
}

func (b *SelectBuilder) validate() error {
	if len(b.columns) == 0 {
		return fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return fmt.Errorf("select table is required")
	}
	for _, cte := range b.with {
		if strings.TrimSpace(cte.name) == "" {
			return fmt.Errorf("common table name is required")
		}
		if cte.body == nil {
			return fmt.Errorf("common table %s has no body", cte.name)
		}
		if sub, ok := cte.body.(*SelectBuilder); ok {
			if err := sub.validate(); err != nil {
				return fmt.Errorf("common table %s: %w", cte.name, err)
			}
		}
	}
	if b.offset < 0 {
		return fmt.Errorf("offset must be >= 0")
	}
	return nil
}

func (b *SelectBuilder) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	if len(b.with) > 0 {
		buf.WriteString("WITH ")
		for i, cte := range b.with {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(cte.name)
			buf.WriteString(" AS (")
			cte.body.appendSQL(buf, args, argIndex)
			buf.WriteString(")")
		}
		buf.WriteString(" ")
	}

	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)

	appendConditions(buf, " WHERE ", b.where, args, argIndex)
	appendList(buf, " GROUP BY ", b.groupBy)
	appendConditions(buf, " HAVING ", b.having, args, argIndex)
	appendList(buf, " ORDER BY ", b.orderBy)
	appendCount(buf, " LIMIT ", b.limit)
	appendCount(buf, " OFFSET ", b.offset)
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	var buf strings.Builder
	buf.WriteString("INSERT INTO ")
	buf.WriteString(b.table)
	buf.WriteString(" (")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(") VALUES ")

	args := make([]any, 0, len(b.rows)*len(b.columns))
	argIndex := 1
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				buf.WriteString(", ")
			}
			bind(&buf, &args, &argIndex, value)
		}
		buf.WriteString(")")
	}

	if b.suffix != "" {
		buf.WriteString(" ")
		buf.WriteString(b.suffix)
	}

	return buf.String(), args, nil
}

func appendConditions(buf *strings.Builder, keyword string, conditions []Condition, args *[]any, argIndex *int) {
	if len(conditions) == 0 {
		return
	}
	buf.WriteString(keyword)
	for i, c := range conditions {
		if i > 0 {
			buf.WriteString(" AND ")
		}
		c.appendSQL(buf, args, argIndex)
	}
}

func appendList(buf *strings.Builder, keyword string, parts []string) {
	if len(parts) == 0 {
		return
	}
	buf.WriteString(keyword)
	buf.WriteString(strings.Join(parts, ", "))
}

func appendCount(buf *strings.Builder, keyword string, n int) {
	if n <= 0 {
		return
	}
	buf.WriteString(keyword)
	buf.WriteString(strconv.Itoa(n))
}

func bind(buf *strings.Builder, args *[]any, argIndex *int, value any) {
	buf.WriteString(placeholder(*argIndex))
	*args = append(*args, value)
	*argIndex = *argIndex + 1
}

func placeholder(i int) string {
	return "$" + strconv.Itoa(i)
}

func rewritePlaceholders(expr string, exprArgs []any, args *[]any, argIndex *int) string {
	if len(exprArgs) == 0 {
		return expr
	}

	var out strings.Builder
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(exprArgs) {
			bind(&out, args, argIndex, exprArgs[next])
			next++
			continue
		}
		out.WriteByte(expr[i])
	}
	return out.String()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
