package types

import (
	"fmt"
	"sort"
)

// Well known context keys
const (
	// ContextKeyType is the extension type declared by the manifest
	ContextKeyType = "type"
	// ContextKeyBasedir is the extension base directory
	ContextKeyBasedir = "basedir"
	// ContextKeyFullName is the extension key (e.g. org.example.foo)
	ContextKeyFullName = "fullName"
	// ContextKeyMainFile is the short name used for the main PHP file
	ContextKeyMainFile = "mainFile"
	// ContextKeyNamespace is the PHP class prefix of the extension
	ContextKeyNamespace = "namespace"
	// ContextKeyTestClass is the short class name of the generated test
	ContextKeyTestClass = "testClass"
	// ContextKeyTestNamespace is the namespace prefix of the generated test
	ContextKeyTestNamespace = "testNamespace"
)

// Context is the string-keyed set of facts accumulated during one
// generation. It is a value: With and Merge return a new Context and never
// modify the receiver.
type Context struct {
	values map[string]interface{}
}

// NewContext creates a Context holding a copy of values
func NewContext(values map[string]interface{}) Context {
	c := Context{values: make(map[string]interface{}, len(values))}
	for k, v := range values {
		c.values[k] = v
	}
	return c
}

// With returns a copy of the context with key set to value
func (c Context) With(key string, value interface{}) Context {
	return c.Merge(map[string]interface{}{key: value})
}

// Merge returns a copy of the context with every entry of delta applied
func (c Context) Merge(delta map[string]interface{}) Context {
	next := Context{values: make(map[string]interface{}, len(c.values)+len(delta))}
	for k, v := range c.values {
		next.values[k] = v
	}
	for k, v := range delta {
		next.values[k] = v
	}
	return next
}

// Get returns the raw value stored under key
func (c Context) Get(key string) (interface{}, bool) {
	v, ok := c.values[key]
	return v, ok
}

// String returns the value under key formatted as a string, or "" when absent
func (c Context) String(key string) string {
	v, ok := c.values[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Map returns a copy of the context values, suitable for template data
func (c Context) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Keys returns the context keys in sorted order
func (c Context) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

