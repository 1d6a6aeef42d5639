// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package source turns external data representations, like YAML or
// environment variables, into a batch of pending edits for a value.
//
// Sources serialize themselves into a key value store. [Batch] reads
// any number of sources, merges them in order and returns a single
// [configure.Transform] which decodes the merged values onto a base
// value, overwriting only the fields the sources actually named.
package source

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/z5labs/construct/configure"
	"github.com/z5labs/construct/configure/source/key"

	"github.com/go-viper/mapstructure/v2"
)

// Store represents a general key value structure.
type Store interface {
	Set(key.Keyer, any) error
}

// Source defines valid edit sources as those who can serialize
// themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// DecodeError occurs when the merged source values can not be
// decoded onto the targeted base value.
type DecodeError struct {
	Cause error
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode source values: %s", e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e DecodeError) Unwrap() error {
	return e.Cause
}

// Batch reads all of the given [Source]s, in order, into a single
// merged store and returns a [configure.Transform] which decodes the
// merged values onto its base. Subsequent sources override previous
// sources. Struct fields are matched via the "config" tag.
//
// Source failures are reported by Batch itself, before anything is
// queued. A decode failure surfaces when the transform runs and, like
// any failing transform, propagates as a panic carrying [DecodeError].
func Batch[T any](srcs ...Source) (configure.Transform[T], error) {
	store := make(Map)
	for _, src := range srcs {
		err := src.Apply(store)
		if err != nil {
			return nil, err
		}
	}

	return func(base *T) {
		err := decode(store, base)
		if err != nil {
			panic(DecodeError{Cause: err})
		}
	}, nil
}

func decode(store Map, v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  v,
		DecodeHook: composeDecodeHooks(
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(store))
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, err
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}

		switch f.Kind() {
		case reflect.String:
			return time.ParseDuration(data.(string))
		case reflect.Int:
			return time.Duration(int64(data.(int))), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}
