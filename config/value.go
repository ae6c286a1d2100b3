package config

import (
	"errors"
	"fmt"
	"strconv"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// ErrUnknownKey is returned for keys that were never registered.
var ErrUnknownKey = errors.New("unknown key")

// Suggest returns the registered key closest to k.
func Suggest(k string) string {
	return lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
}

// Lookup returns the field registered for k.
func Lookup(k string) (Field, error) {
	field, ok := Default[k]
	if !ok {
		return Field{}, fmt.Errorf("%w %s, did you mean %s?", ErrUnknownKey, k, Suggest(k))
	}
	return field, nil
}

// ParseValue converts raw CLI arguments to the type of the field registered for k.
func ParseValue(k string, raw []string) (any, error) {
	field, err := Lookup(k)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, errors.New("value is required")
	}

	switch field.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		v, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw[0])
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw[0])
		}
		return v, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported type %T for %s", field.Value, k)
	}
}
