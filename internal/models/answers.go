package models

import "fmt"

// Answers maps a question name to the value the user supplied. A missing key
// means the answer is absent.
type Answers map[string]any

// Set stores value under name. A nil value removes the key.
func (a Answers) Set(name string, value any) {
	if value == nil {
		delete(a, name)
		return
	}
	a[name] = value
}

func (a Answers) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns the answer as a string; absent answers are "".
func (a Answers) String(name string) string {
	v, ok := a[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Bool reports whether the answer is truthy: true, or a non-empty string.
func (a Answers) Bool(name string) bool {
	switch v := a[name].(type) {
	case bool:
		return v
	case string:
		return v != ""
	case nil:
		return false
	default:
		return true
	}
}

// Merge copies other into a, later keys overwriting earlier ones.
func (a Answers) Merge(other Answers) {
	for k, v := range other {
		a.Set(k, v)
	}
}
