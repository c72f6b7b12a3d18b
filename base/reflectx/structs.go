// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for config structs.
package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/meshstack/base/errors"
)

// SetFromDefaultTags sets the values of the fields in the given struct
// pointer from their `default:` struct tags. Fields without a tag are
// left unchanged, except that struct fields without a tag are set
// recursively. Fields of types implementing [encoding.TextUnmarshaler]
// are set from the tag text.
func SetFromDefaultTags(obj any) error {
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return nil
	}
	val := ov.Elem()
	if val.Kind() != reflect.Struct {
		return nil
	}
	typ := val.Type()
	var errs []error
	for i, n_ := 0, typ.NumField(); i < n_; i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok || def == "" {
			if f.Type.Kind() == reflect.Struct {
				if err := SetFromDefaultTags(fv.Addr().Interface()); err != nil {
					errs = append(errs, err)
				}
			}
			continue
		}
		if err := SetString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetString sets the given settable value from its string
// representation, for text unmarshalers, strings, bools,
// and integer and floating point kinds.
func SetString(v reflect.Value, s string) error {
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
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(x)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
