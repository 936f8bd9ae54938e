package utils

import (
	"reflect"
	"strings"
	"time"
	"unicode"
)

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// OnlyDigits strips every non-digit character from s.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func IsOnlyNumbers(s string) bool {
	if s == "" {
		return false
	}

	for _, ch := range s {
		if !unicode.IsDigit(ch) || ch > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// Sanitize trims every string (and string pointer) field of the struct pointed by o.
// Nested structs are sanitized too.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}
	sanitizeStruct(v)
}

func sanitizeStruct(v reflect.Value) {
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if field.IsNil() {
				continue
			}
			elem := field.Elem()
			switch elem.Kind() {
			case reflect.String:
				elem.SetString(sanitizeString(elem.String()))
			case reflect.Struct:
				sanitizeStruct(elem)
			}

		case reflect.Struct:
			sanitizeStruct(field)

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
