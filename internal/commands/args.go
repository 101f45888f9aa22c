package commands

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ParseInlineArgs populates struct from positional arg string
// Format: "value1 value2" maps to struct fields in order
// Optional fields use defaults if not provided
//
// Struct tags format:
//
//	Field type `form:"name" title:"Display" default:"val" optional:"true"`
func ParseInlineArgs(argsStruct any, argString string) error {
	if argsStruct == nil {
		return nil
	}

	val := reflect.ValueOf(argsStruct)
	if val.Kind() != reflect.Ptr {
		return fmt.Errorf("argsStruct must be a pointer to struct")
	}
	val = val.Elem()

	if val.Kind() != reflect.Struct {
		return fmt.Errorf("argsStruct must be a pointer to struct")
	}

	argString = strings.TrimSpace(argString)
	var args []string
	if argString != "" {
		args = strings.Fields(argString)
	}

	typ := val.Type()
	argIdx := 0

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		formTag := field.Tag.Get("form")
		if formTag == "" {
			continue
		}

		optional := field.Tag.Get("optional") == "true"
		defaultTag := field.Tag.Get("default")

		var argValue string
		if argIdx < len(args) {
			argValue = args[argIdx]
			argIdx++
		} else if optional && defaultTag != "" {
			argValue = defaultTag
		} else if optional {
			continue
		} else {
			return fmt.Errorf("missing required argument: %s", fieldTitle(field))
		}

		if err := setFieldValue(fieldVal, argValue); err != nil {
			return fmt.Errorf("invalid value for %s: %w", fieldTitle(field), err)
		}
	}

	return nil
}

func fieldTitle(field reflect.StructField) string {
	if title := field.Tag.Get("title"); title != "" {
		return title
	}
	return field.Name
}

// setFieldValue sets a reflect.Value from a string
func setFieldValue(fieldVal reflect.Value, value string) error {
	if !fieldVal.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	switch fieldVal.Kind() {
	case reflect.String:
		fieldVal.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("must be an integer")
		}
		fieldVal.SetInt(intVal)
	case reflect.Bool:
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("must be true or false")
		}
		fieldVal.SetBool(boolVal)
	default:
		return fmt.Errorf("unsupported field type: %s", fieldVal.Kind())
	}

	return nil
}
