// Package document provides an insertion ordered JSON object, so that
// generated files list keys in the same order as the configuration file.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Item is a single key/value pair of a Mapping.
type Item struct {
	Key   string
	Value interface{}
}

// Mapping is a JSON object that remembers the order of its keys.
//
// Values are one of Mapping, []interface{}, string, json.Number, bool or nil.
type Mapping []Item

// Decode reads a single JSON object from r. Nested objects are decoded
// as Mappings and numbers as json.Number so that they are written back
// exactly as they were read.
func Decode(r io.Reader) (Mapping, error) {
	if r == nil {
		return nil, errors.New("'r' cannot be nil")
	}

	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("top level value must be a JSON object")
	}

	mapping, err := decodeObject(decoder)
	if err != nil {
		return nil, err
	}

	if _, err := decoder.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top level JSON object")
	}

	return mapping, nil
}

func decodeValue(decoder *json.Decoder, token json.Token) (interface{}, error) {
	delim, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}

	switch delim {
	case '{':
		return decodeObject(decoder)
	case '[':
		return decodeArray(decoder)
	default:
		return nil, fmt.Errorf("unexpected delimiter '%s'", delim)
	}
}

func decodeObject(decoder *json.Decoder) (Mapping, error) {
	mapping := Mapping{}

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got '%v'", token)
		}

		token, err = decoder.Token()
		if err != nil {
			return nil, err
		}

		value, err := decodeValue(decoder, token)
		if err != nil {
			return nil, err
		}

		mapping = mapping.Set(key, value)
	}

	// closing '}'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return mapping, nil
}

func decodeArray(decoder *json.Decoder) ([]interface{}, error) {
	values := []interface{}{}

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		value, err := decodeValue(decoder, token)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	// closing ']'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return values, nil
}

// Get returns the value stored under key and whether it exists.
func (m Mapping) Get(key string) (interface{}, bool) {
	for _, item := range m {
		if item.Key == key {
			return item.Value, true
		}
	}

	return nil, false
}

// Set stores value under key. An existing key keeps its position, a new
// key is appended. The receiver is not modified if a new key is added, so
// the result must always be used.
func (m Mapping) Set(key string, value interface{}) Mapping {
	for i, item := range m {
		if item.Key == key {
			m[i].Value = value
			return m
		}
	}

	return append(m, Item{Key: key, Value: value})
}

// Keys returns the keys in order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))

	for i, item := range m {
		keys[i] = item.Key
	}

	return keys
}

// Without returns a shallow copy of the Mapping without key. Values are
// shared with the receiver.
func (m Mapping) Without(key string) Mapping {
	copied := make(Mapping, 0, len(m))

	for _, item := range m {
		if item.Key != key {
			copied = append(copied, item)
		}
	}

	return copied
}

// Plain converts the Mapping into nested map[string]interface{} and
// []interface{} values with numbers as int64 or float64, the shape most
// libraries expect from a decoded JSON document.
func (m Mapping) Plain() map[string]interface{} {
	plain := make(map[string]interface{}, len(m))

	for _, item := range m {
		plain[item.Key] = plainValue(item.Value)
	}

	return plain
}

func plainValue(value interface{}) interface{} {
	switch value := value.(type) {
	case Mapping:
		return value.Plain()
	case []interface{}:
		values := make([]interface{}, len(value))

		for i, v := range value {
			values[i] = plainValue(v)
		}

		return values
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i
		}

		if f, err := value.Float64(); err == nil {
			return f
		}

		return value.String()
	default:
		return value
	}
}

// MarshalJSON writes the Mapping as a JSON object with keys in order.
// HTML characters are not escaped.
func (m Mapping) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, item := range m {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := marshalUnescaped(item.Key)
		if err != nil {
			return nil, err
		}

		value, err := marshalUnescaped(item.Value)
		if err != nil {
			return nil, fmt.Errorf("'%s': %v", item.Key, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML lets yaml.v2 write the Mapping with keys in order.
func (m Mapping) MarshalYAML() (interface{}, error) {
	slice := make(yaml.MapSlice, len(m))

	for i, item := range m {
		slice[i] = yaml.MapItem{Key: item.Key, Value: item.Value}
	}

	return slice, nil
}

func marshalUnescaped(v interface{}) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
