// Package envconf fills configuration structs from environment variables
// named in `env` struct tags.
package envconf

import (
	"encoding"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingRequired = errors.New("missing required environment variable")
	ErrUnsupportedType = errors.New("unsupported field type")
)

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// LoadWithDotEnv reads the given .env files (".env" when none are given) into
// the process environment and then calls Load. Missing files are ignored;
// variables already set in the environment win over file values.
func LoadWithDotEnv(dst any, files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load dotenv: %w", err)
	}

	return Load(dst)
}

// Load fills the exported fields of the struct pointed to by dst from the
// environment variables named in their `env` tags. A field whose variable is
// unset falls back to its `default` tag; without one, Load fails with
// ErrMissingRequired. An empty default leaves the zero value. Untagged struct
// fields, and pointers to structs, are loaded recursively.
func Load(dst any) error {
	if dst == nil {
		return errors.New("destination is nil")
	}

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return errors.New("destination must be a non-nil pointer to a struct")
	}

	if v.Elem().Kind() != reflect.Struct {
		return errors.New("destination must point to a struct")
	}

	return loadStruct(v.Elem())
}

func loadStruct(v reflect.Value) error {
	t := v.Type()

	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		err := loadField(sf, v.Field(i))
		if err != nil {
			return err
		}
	}

	return nil
}

func loadField(sf reflect.StructField, fv reflect.Value) error {
	name := sf.Tag.Get("env")
	if name == "" || name == "-" {
		return loadNested(sf, fv)
	}

	raw, ok := os.LookupEnv(name)
	if !ok {
		raw, ok = sf.Tag.Lookup("default")
		if !ok {
			return fmt.Errorf("%w: %s (field %q)", ErrMissingRequired, name, sf.Name)
		}

		if raw == "" {
			return nil
		}
	}

	err := setValue(fv, raw)
	if err != nil {
		return fmt.Errorf("parse %q for field %q: %w", name, sf.Name, err)
	}

	return nil
}

// loadNested descends into untagged struct fields. Other untagged fields are
// left alone.
func loadNested(sf reflect.StructField, fv reflect.Value) error {
	var target reflect.Value

	switch {
	case fv.Kind() == reflect.Struct && fv.Type() != durationType:
		target = fv
	case fv.Kind() == reflect.Pointer && fv.Type().Elem().Kind() == reflect.Struct:
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}

		target = fv.Elem()
	default:
		return nil
	}

	err := loadStruct(target)
	if err != nil {
		return fmt.Errorf("load recursively %q: %w", sf.Name, err)
	}

	return nil
}

//nolint:cyclop
func setValue(fv reflect.Value, raw string) error {
	if !fv.CanSet() {
		return fmt.Errorf("field not settable: %w", ErrUnsupportedType)
	}

	if fv.CanAddr() && fv.Addr().Type().Implements(textUnmarshalerType) {
		u, _ := fv.Addr().Interface().(encoding.TextUnmarshaler)

		err := u.UnmarshalText([]byte(raw))
		if err != nil {
			return fmt.Errorf("unmarshal text: %w", err)
		}

		return nil
	}

	if fv.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("parse duration: %w", err)
		}

		fv.SetInt(int64(d))

		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("parse bool: %w", err)
		}

		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 10, fv.Type().Bits())
		if err != nil {
			return fmt.Errorf("parse int: %w", err)
		}

		fv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 10, fv.Type().Bits())
		if err != nil {
			return fmt.Errorf("parse uint: %w", err)
		}

		fv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, fv.Type().Bits())
		if err != nil {
			return fmt.Errorf("parse float: %w", err)
		}

		fv.SetFloat(f)
	case reflect.Pointer:
		elem := reflect.New(fv.Type().Elem())

		err := setValue(elem.Elem(), raw)
		if err != nil {
			return fmt.Errorf("parse pointer: %w", err)
		}

		fv.Set(elem)
	default:
		return fmt.Errorf("unsupported type %s: %w", fv.Type(), ErrUnsupportedType)
	}

	return nil
}
