package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// columnPlan maps the `db` tags of a struct type to field indexes.
type columnPlan struct {
	names  []string
	fields [][]int
}

var plans sync.Map // reflect.Type -> columnPlan

// InsertModels builds a multi-row insert from structs tagged with `db`.
// Fields tagged "-" or untagged are skipped; embedded structs are flattened.
func InsertModels[T any](table string, models []T) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("insert models are required")
	}

	typ := reflect.TypeFor[T]()
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	plan, err := planFor(typ)
	if err != nil {
		return "", nil, err
	}

	b := InsertInto(table).Columns(plan.names...)
	for i := range models {
		v := reflect.ValueOf(&models[i]).Elem()
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return "", nil, fmt.Errorf("insert model %d is nil", i)
			}
			v = v.Elem()
		}
		row := make([]any, len(plan.fields))
		for j, idx := range plan.fields {
			row[j] = v.FieldByIndex(idx).Interface()
		}
		b.Values(row...)
	}
	return b.ToSQL()
}

func planFor(typ reflect.Type) (columnPlan, error) {
	if cached, ok := plans.Load(typ); ok {
		return cached.(columnPlan), nil
	}
	if typ.Kind() != reflect.Struct {
		return columnPlan{}, fmt.Errorf("model must be a struct, got %s", typ.Kind())
	}

	var plan columnPlan
	collectColumns(typ, nil, &plan)
	if len(plan.names) == 0 {
		return columnPlan{}, fmt.Errorf("model %s has no db columns", typ)
	}
	plans.Store(typ, plan)
	return plan, nil
}

func collectColumns(typ reflect.Type, prefix []int, plan *columnPlan) {
	for _, field := range reflect.VisibleFields(typ) {
		if len(field.Index) != 1 {
			continue
		}
		index := append(append([]int(nil), prefix...), field.Index...)
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)

		if field.Anonymous && name == "" && field.Type.Kind() == reflect.Struct {
			collectColumns(field.Type, index, plan)
			continue
		}
		if !field.IsExported() || name == "" || name == "-" {
			continue
		}
		plan.names = append(plan.names, name)
		plan.fields = append(plan.fields, index)
	}
}
