// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding"
	"flag"
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/meshstack/base/errors"
	"github.com/iancoleman/strcase"
)

// float32Value is a [flag.Value] for a float32 field.
type float32Value struct {
	v *float32
}

func (f float32Value) String() string {
	if f.v == nil {
		return "0"
	}
	return strconv.FormatFloat(float64(*f.v), 'g', -1, 32)
}

func (f float32Value) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*f.v = float32(v)
	return nil
}

// FlagName returns the command line flag name for the given
// config field name, in kebab-case: SphereLat is sphere-lat.
func FlagName(field string) string {
	return strcase.ToKebab(field)
}

// BindFlags defines a flag on the given flag set for each field of
// the given config, named with [FlagName], with the `desc` struct tag
// as usage and the current field value as default. Parsing the flag
// set then overrides the fields given on the command line.
func BindFlags(fs *flag.FlagSet, c *Config) {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()
	for i, n_ := 0, t.NumField(); i < n_; i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := FlagName(f.Name)
		usage := f.Tag.Get("desc")
		ptr := v.Field(i).Addr().Interface()
		switch p := ptr.(type) {
		case encoding.TextUnmarshaler:
			fs.TextVar(p, name, v.Field(i).Interface().(encoding.TextMarshaler), usage)
		case *int:
			fs.IntVar(p, name, *p, usage)
		case *bool:
			fs.BoolVar(p, name, *p, usage)
		case *string:
			fs.StringVar(p, name, *p, usage)
		case *float32:
			fs.Var(float32Value{p}, name, usage)
		default:
			panic(fmt.Sprintf("config.BindFlags: field %s of unsupported type %s", f.Name, f.Type))
		}
	}
}

// ApplySetFlags sets the fields of the given config from the flags
// that were set on the command line in the given parsed flag set,
// so that explicit flags override values read from a config file.
// Flags that do not correspond to a config field are ignored.
func ApplySetFlags(parsed *flag.FlagSet, c *Config) error {
	over := flag.NewFlagSet("config", flag.ContinueOnError)
	BindFlags(over, c)
	var errs []error
	parsed.Visit(func(f *flag.Flag) {
		if over.Lookup(f.Name) == nil {
			return
		}
		if err := over.Set(f.Name, f.Value.String()); err != nil {
			errs = append(errs, fmt.Errorf("flag -%s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}
