package lib

import (
	"fmt"
	"reflect"
	"strings"
)

// source pairs a caller's element with the path string read from it.
type source struct {
	original any
	path     string
}

// KeyArg converts an untyped key, as decoded from a document, into the variadic key argument of the Find functions.
func KeyArg(key any) ([]string, error) {
	switch k := key.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{k}, nil
	}
	return nil, fmt.Errorf("%w: got %T", ErrInvalidFieldName, key)
}

// collectSources validates paths and the optional key and extracts every path string, keeping input order.
func collectSources(paths any, key []string) ([]source, error) {
	if strs, ok := paths.([]string); ok {
		if len(key) > 1 {
			return nil, fmt.Errorf("%w: got %d keys", ErrInvalidFieldName, len(key))
		}
		sources := make([]source, len(strs))
		for i, s := range strs {
			sources[i] = source{original: s, path: s}
		}
		return sources, nil
	}
	if paths == nil {
		return nil, fmt.Errorf("%w: got nil", ErrInvalidInputShape)
	}
	list := reflect.ValueOf(paths)
	if list.Kind() != reflect.Slice && list.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidInputShape, paths)
	}
	if len(key) > 1 {
		return nil, fmt.Errorf("%w: got %d keys", ErrInvalidFieldName, len(key))
	}
	hasKey := len(key) == 1
	var fieldName string
	if hasKey {
		fieldName = key[0]
	}
	sources := make([]source, list.Len())
	for i := range sources {
		original := list.Index(i).Interface()
		pathString, err := elementPath(original, fieldName, hasKey)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		sources[i] = source{original: original, path: pathString}
	}
	return sources, nil
}

func elementPath(element any, fieldName string, hasKey bool) (string, error) {
	if element == nil {
		return "", fmt.Errorf("%w: got nil", ErrInvalidElement)
	}
	value := reflect.ValueOf(element)
	if value.Kind() == reflect.String {
		return value.String(), nil
	}
	if value.Kind() == reflect.Pointer && !value.IsNil() && value.Elem().Kind() == reflect.Struct {
		value = value.Elem()
	}
	structured := value.Kind() == reflect.Struct ||
		value.Kind() == reflect.Map && value.Type().Key().Kind() == reflect.String
	if !structured {
		return "", fmt.Errorf("%w: got %T", ErrInvalidElement, element)
	}
	if !hasKey {
		return "", ErrMissingFieldName
	}
	field, ok := lookupField(value, fieldName)
	if !ok {
		return "", fmt.Errorf("%w: no field %q in %T", ErrInvalidFieldValue, fieldName, element)
	}
	for field.Kind() == reflect.Interface && !field.IsNil() {
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return "", fmt.Errorf("%w: field %q is %s", ErrInvalidFieldValue, fieldName, field.Kind())
	}
	return field.String(), nil
}

func lookupField(value reflect.Value, name string) (reflect.Value, bool) {
	if value.Kind() == reflect.Map {
		field := value.MapIndex(reflect.ValueOf(name).Convert(value.Type().Key()))
		return field, field.IsValid()
	}
	structType := value.Type()
	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		if !structField.IsExported() {
			continue
		}
		if structField.Name == name || tagMatches(structField.Tag.Get("json"), name) || tagMatches(structField.Tag.Get("yaml"), name) {
			return value.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func tagMatches(tag, name string) bool {
	tagged, _, _ := strings.Cut(tag, ",")
	return tagged != "" && tagged != "-" && tagged == name
}
