package store

import (
	"encoding/json"
)

// NullString is an optional string that marshals to JSON null when unset.
type NullString struct {
	Value string
	Valid bool
}

// NewNullString treats the empty string as absent.
func NewNullString(s string) NullString {
	return NullString{Value: s, Valid: s != ""}
}

// MarshalJSON implements the json.Marshaler interface
func (ns NullString) MarshalJSON() ([]byte, error) {
	if !ns.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ns.Value)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (ns *NullString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		ns.Valid = false
		ns.Value = ""
		return nil
	}
	ns.Valid = true
	return json.Unmarshal(data, &ns.Value)
}
