package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Property is one variant attribute as stored in the document. Value is
// untyped because documents in the wild carry strings, numbers, and bools;
// the extraction step decides what to keep.
type Property struct {
	Key   string
	Value any
}

// PropertySet is an ordered property mapping. The JSON form is a plain
// object; a custom codec preserves key order across a load/save round
// trip, which standard map decoding would destroy.
type PropertySet []Property

// Get returns the value for key and whether it is present.
func (ps PropertySet) Get(key string) (any, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// UnmarshalJSON decodes a JSON object token by token so that the key order
// in the file is retained.
func (ps *PropertySet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("variant properties: %w", err)
	}
	if tok == nil {
		*ps = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("variant properties: expected object, got %v", tok)
	}

	var out PropertySet
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("variant properties: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("variant properties: non-string key %v", keyTok)
		}
		// Numbers stay json.Number so a save re-emits them verbatim.
		var val any
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("variant properties %q: %w", key, err)
		}
		out = append(out, Property{Key: key, Value: val})
	}
	*ps = out
	return nil
}

// MarshalJSON encodes the set as a JSON object in insertion order.
func (ps PropertySet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range ps {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.Value)
		if err != nil {
			return nil, fmt.Errorf("variant properties %q: %w", p.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
