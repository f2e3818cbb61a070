package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNullList = errors.New("list is null")

// EncodeStringList serialises a set as a JSON array. An empty set encodes as
// "[]", never "null".
func EncodeStringList(set StringSet) (string, error) {
	data, err := json.Marshal(set.Clone())
	if err != nil {
		return "", fmt.Errorf("marshalling string list: %w", err)
	}
	return string(data), nil
}

// DecodeStringList parses a JSON array of strings. Anything else, including
// "null", is an error. Duplicates are dropped.
func DecodeStringList(value string) (StringSet, error) {
	trimmed := bytes.TrimSpace([]byte(value))
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, errNullList
	}

	var items []string
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("unmarshalling string list: %w", err)
	}
	return NewStringSet(items...), nil
}
