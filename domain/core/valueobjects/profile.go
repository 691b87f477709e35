package valueobjects

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// PatientProfile is an immutable record of node values for one patient.
// Missing values read as zero.
type PatientProfile struct {
	id     string
	name   string
	values map[NodeID]float64
}

// NewPatientProfile copies values into a new profile
func NewPatientProfile(id, name string, values map[NodeID]float64) PatientProfile {
	p := PatientProfile{id: id, name: name, values: make(map[NodeID]float64, len(values))}
	for k, v := range values {
		p.values[k] = v
	}
	return p
}

// ID returns the caller-assigned identifier, possibly empty
func (p PatientProfile) ID() string { return p.id }

// Name returns the display name, possibly empty
func (p PatientProfile) Name() string { return p.name }

// Value returns the value for a node, or 0 when absent
func (p PatientProfile) Value(id NodeID) float64 {
	return p.values[id]
}

// Has reports whether the profile carries an explicit value for the node
func (p PatientProfile) Has(id NodeID) bool {
	_, ok := p.values[id]
	return ok
}

// Len returns the number of explicit values
func (p PatientProfile) Len() int { return len(p.values) }

// Keys returns the node ids with explicit values, sorted
func (p PatientProfile) Keys() []NodeID {
	keys := make([]NodeID, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Values returns a copy of the underlying values
func (p PatientProfile) Values() map[NodeID]float64 {
	out := make(map[NodeID]float64, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// With returns a new profile with the overrides applied
func (p PatientProfile) With(overrides map[NodeID]float64) PatientProfile {
	next := NewPatientProfile(p.id, p.name, p.values)
	for k, v := range overrides {
		next.values[k] = v
	}
	return next
}

// WithID returns a copy carrying the given identifier
func (p PatientProfile) WithID(id string) PatientProfile {
	next := NewPatientProfile(id, p.name, p.values)
	return next
}

// MarshalJSON encodes the profile as a flat record
func (p PatientProfile) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key string, v interface{}) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key)
		val, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
		return nil
	}
	if p.id != "" {
		if err := write("id", p.id); err != nil {
			return nil, err
		}
	}
	if p.name != "" {
		if err := write("name", p.name); err != nil {
			return nil, err
		}
	}
	for _, k := range p.Keys() {
		if err := write(string(k), p.values[k]); err != nil {
			return nil, fmt.Errorf("encode %s: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat record. Unknown keys are rejected.
func (p *PatientProfile) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	next := PatientProfile{values: make(map[NodeID]float64, len(raw))}
	for key, msg := range raw {
		switch key {
		case "id":
			if err := json.Unmarshal(msg, &next.id); err != nil {
				return fmt.Errorf("id: %w", err)
			}
		case "name":
			if err := json.Unmarshal(msg, &next.name); err != nil {
				return fmt.Errorf("name: %w", err)
			}
		default:
			id, err := ParseNodeID(key)
			if err != nil {
				return err
			}
			var v float64
			if err := json.Unmarshal(msg, &v); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			next.values[id] = v
		}
	}
	*p = next
	return nil
}
