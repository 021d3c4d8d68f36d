package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// CustomerGroup is a named bucket of files sharing one expiry.
type CustomerGroup struct {
	Name  string
	Files []FileRecord
}

// ExpiresAt is the group's expiry, taken from its first file.
func (g CustomerGroup) ExpiresAt() Timestamp {
	if len(g.Files) == 0 {
		return Timestamp{}
	}
	return g.Files[0].CustomerExpiresAt
}

// Customers keeps the customer mapping in the order the API sent it.
type Customers []CustomerGroup

// Find returns the group with the given name.
func (c Customers) Find(name string) (CustomerGroup, bool) {
	for _, g := range c {
		if g.Name == name {
			return g, true
		}
	}
	return CustomerGroup{}, false
}

func (c *Customers) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*c = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("customers: expected object")
	}

	var out Customers
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("customers: unexpected key %v", tok)
		}

		var files []FileRecord
		if err := dec.Decode(&files); err != nil {
			return fmt.Errorf("customers[%s]: %w", name, err)
		}
		out = append(out, CustomerGroup{Name: name, Files: files})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = out
	return nil
}

// Manifest is the response of GET /files/{linkId}.
type Manifest struct {
	LinkID    string    `json:"link_id"`
	Expired   bool      `json:"expired"`
	ExpiresAt Timestamp `json:"expires_at"`
	Customers Customers `json:"customers"`
}
