package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// CodeSet is an ordered, duplicate-free set of short codes stored as a
// comma separated string ("b,y,a,s"), the format the front-end speaks.
type CodeSet[T ~string] []T

// ParseCodeSet splits a CSV string, keeping only codes present in allowed.
// Result order follows allowed, so equal sets always serialize the same way.
func ParseCodeSet[T ~string](raw string, allowed []T) CodeSet[T] {
	seen := make(map[T]bool)
	for _, part := range strings.Split(raw, ",") {
		seen[T(strings.ToLower(strings.TrimSpace(part)))] = true
	}
	return filterAllowed(seen, allowed)
}

// NewCodeSet builds a set from codes, dropping anything not in allowed.
func NewCodeSet[T ~string](codes []T, allowed []T) CodeSet[T] {
	seen := make(map[T]bool, len(codes))
	for _, c := range codes {
		seen[T(strings.ToLower(strings.TrimSpace(string(c))))] = true
	}
	return filterAllowed(seen, allowed)
}

func filterAllowed[T ~string](seen map[T]bool, allowed []T) CodeSet[T] {
	out := make(CodeSet[T], 0, len(allowed))
	for _, a := range allowed {
		if seen[a] {
			out = append(out, a)
		}
	}
	return out
}

func (s CodeSet[T]) Contains(code T) bool {
	return slices.Contains(s, code)
}

func (s CodeSet[T]) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

func (s CodeSet[T]) Value() (driver.Value, error) {
	return s.String(), nil
}

func (s *CodeSet[T]) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*s = CodeSet[T]{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into CodeSet", src)
	}
	out := CodeSet[T]{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, T(part))
		}
	}
	*s = out
	return nil
}

func (s CodeSet[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts "b,y" as well as ["b","y"]. Validation against the
// allowed codes happens in the service layer, not here.
func (s *CodeSet[T]) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		return s.Scan(raw)
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("expected CSV string or array: %w", err)
	}
	return s.Scan(strings.Join(list, ","))
}
