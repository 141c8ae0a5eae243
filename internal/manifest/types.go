package manifest

import (
	"encoding/json"
)

// FileName is the manifest file inside a project directory.
const FileName = "package.json"

// Reserved top-level keys rewritten by the scaffolder.
const (
	KeyName        = "name"
	KeyDescription = "description"
	KeyAuthor      = "author"
	KeyBin         = "bin"
	KeyScripts     = "scripts"
	KeyEngines     = "engines"
)

// Manifest is a JSON object that remembers the order of its keys. Values are
// kept as raw JSON so keys this package does not understand round-trip
// unchanged.
type Manifest struct {
	keys   []string
	values map[string]json.RawMessage
}

// New returns an empty Manifest.
func New() *Manifest {
	return &Manifest{values: make(map[string]json.RawMessage)}
}

// Keys returns the keys in document order.
func (m *Manifest) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Manifest) Len() int { return len(m.keys) }

// Has reports whether key is present.
func (m *Manifest) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Raw returns the raw JSON stored under key.
func (m *Manifest) Raw(key string) (json.RawMessage, bool) {
	v, ok := m.values[key]
	return v, ok
}

// SetRaw stores raw JSON under key. New keys are appended; existing keys
// keep their position.
func (m *Manifest) SetRaw(key string, raw json.RawMessage) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = raw
}

// Set marshals v and stores it under key.
func (m *Manifest) Set(key string, v interface{}) error {
	raw, err := marshalValue(v)
	if err != nil {
		return err
	}
	m.SetRaw(key, raw)
	return nil
}

// SetString stores a string value under key.
func (m *Manifest) SetString(key, value string) {
	// Marshaling a string cannot fail.
	raw, _ := marshalValue(value)
	m.SetRaw(key, raw)
}

// GetString returns the value under key when it is a JSON string.
func (m *Manifest) GetString(key string) (string, bool) {
	raw, ok := m.values[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Object returns the nested object stored under key. A missing key, null,
// or a non-object value yields an empty object.
func (m *Manifest) Object(key string) *Manifest {
	raw, ok := m.values[key]
	if !ok {
		return New()
	}
	obj, err := Parse(raw)
	if err != nil {
		return New()
	}
	return obj
}

// SetObject stores a nested object under key.
func (m *Manifest) SetObject(key string, obj *Manifest) {
	m.SetRaw(key, obj.compact())
}

// Delete removes key.
func (m *Manifest) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// BinEntry returns the first command registered under "bin". A string bin
// is registered under the package name, as npm does.
func (m *Manifest) BinEntry() (command, path string, ok bool) {
	raw, present := m.values[KeyBin]
	if !present {
		return "", "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		name, _ := m.GetString(KeyName)
		if name == "" || s == "" {
			return "", "", false
		}
		return name, s, true
	}

	bin := m.Object(KeyBin)
	for _, k := range bin.keys {
		if p, ok := bin.GetString(k); ok {
			return k, p, true
		}
	}
	return "", "", false
}
