// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/glshapes/glshapes/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `def:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(setFromDefaultTags(cfg))
}

// setFromDefaultTags sets values of fields in the struct pointed to by obj
// based on `def:` default value field tags. Nested structs without a
// tag are recursed into.
func setFromDefaultTags(obj any) error {
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return fmt.Errorf("SetFromDefaults: need a non-nil pointer to a struct, got %T", obj)
	}
	val := ov.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaults: need a pointer to a struct, got %T", obj)
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("def")
		if !ok || def == "" {
			if fv.Kind() == reflect.Struct {
				errs = append(errs, setFromDefaultTags(fv.Addr().Interface()))
			}
			continue
		}
		if err := setString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaults: was not able to set field %s in object of type %s from value %q: %w", f.Name, typ.Name(), def, err))
		}
	}
	return errors.Join(errs...)
}

// setString sets the settable value v from its string representation s.
// Arrays and slices take space separated elements.
func setString(v reflect.Value, s string) error {
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(x)
	case reflect.Array:
		elems := strings.Fields(s)
		if len(elems) != v.Len() {
			return fmt.Errorf("need %d elements, got %d", v.Len(), len(elems))
		}
		for i, e := range elems {
			if err := setString(v.Index(i), e); err != nil {
				return err
			}
		}
	case reflect.Slice:
		elems := strings.Fields(s)
		sl := reflect.MakeSlice(v.Type(), len(elems), len(elems))
		for i, e := range elems {
			if err := setString(sl.Index(i), e); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
