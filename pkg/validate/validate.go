// Package validate checks form input structs before any write hits the
// API, via `validate` struct tags.
//
// Supported rules (comma-separated):
//
//	required        field must not be zero/empty
//	nullable        if empty, skip all remaining rules for this field
//	email           valid email address
//	numeric         any number
//	integer         whole number
//	min=N           string: min char length | number: min value
//	max=N           string: max char length | number: max value
//	gt=N            number > N
//	gte=N           number >= N
//	date            parseable calendar date
//	in=a,b,c        value must be one of the listed items
//
// Example:
//
//	type ProductInput struct {
//	    Name     string  `json:"name"     validate:"required,min=2"`
//	    Price    float64 `json:"price"    validate:"required,gte=0"`
//	    Quantity int     `json:"quantity" validate:"required,gte=0"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := strings.Split(tag, ",")

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			rule = strings.TrimSpace(rule)
			if rule == "" || rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// FirstError flattens a Struct result into one user-facing message, or
// "" when the input is valid. Forms surface a single notification at a
// time. Field order is deterministic so the same invalid form always
// reports the same message.
func FirstError(errs map[string]string) string {
	if len(errs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return errs[keys[0]]
}

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return f.Name
	}
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}
	if tag == "" {
		return f.Name
	}
	return tag
}

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == name {
			return true
		}
	}
	return false
}

func applyRule(rule, name string, v reflect.Value) string {
	arg := ""
	if idx := strings.IndexByte(rule, '='); idx >= 0 {
		arg = rule[idx+1:]
		rule = rule[:idx]
	}

	switch rule {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("%s is required", name)
		}
	case "email":
		if !emailRe.MatchString(asString(v)) {
			return fmt.Sprintf("%s must be a valid email address", name)
		}
	case "numeric":
		if _, ok := asFloat(v); !ok {
			return fmt.Sprintf("%s must be a number", name)
		}
	case "integer":
		f, ok := asFloat(v)
		if !ok || f != float64(int64(f)) {
			return fmt.Sprintf("%s must be a whole number", name)
		}
	case "min":
		if msg := checkBound(name, v, arg, func(got, want float64) bool { return got >= want }, "at least"); msg != "" {
			return msg
		}
	case "max":
		if msg := checkBound(name, v, arg, func(got, want float64) bool { return got <= want }, "at most"); msg != "" {
			return msg
		}
	case "gt":
		if f, ok := asFloat(v); !ok || f <= mustFloat(arg) {
			return fmt.Sprintf("%s must be greater than %s", name, arg)
		}
	case "gte":
		if f, ok := asFloat(v); !ok || f < mustFloat(arg) {
			return fmt.Sprintf("%s must be at least %s", name, arg)
		}
	case "date":
		if !isDate(asString(v)) {
			return fmt.Sprintf("%s must be a valid date", name)
		}
	case "in":
		allowed := strings.Split(arg, ",")
		got := asString(v)
		for _, a := range allowed {
			if got == a {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", name, arg)
	}
	return ""
}

// checkBound applies min/max. Strings are measured by length, numbers by
// value.
func checkBound(name string, v reflect.Value, arg string, ok func(got, want float64) bool, word string) string {
	want := mustFloat(arg)
	if v.Kind() == reflect.String {
		if !ok(float64(len([]rune(v.String()))), want) {
			return fmt.Sprintf("%s must be %s %s characters", name, word, arg)
		}
		return ""
	}
	f, isNum := asFloat(v)
	if !isNum || !ok(f, want) {
		return fmt.Sprintf("%s must be %s %s", name, word, arg)
	}
	return ""
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

func asString(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return v.String()
	}
	return fmt.Sprintf("%v", v.Interface())
}

func asFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func mustFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func isDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
