package state

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the stored value. Listeners and bindings are not encoded.
func (v *Value[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Get())
}

// UnmarshalJSON stores the decoded value without notifying listeners or
// propagating to a bound value.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	v.restore(value)
	return nil
}

// MarshalYAML encodes the stored value.
func (v *Value[T]) MarshalYAML() (any, error) {
	return v.Get(), nil
}

// UnmarshalYAML stores the decoded value without notifying.
func (v *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	var value T
	if err := node.Decode(&value); err != nil {
		return err
	}
	v.restore(value)
	return nil
}

func (v *Value[T]) restore(value T) {
	v.mu.Lock()
	v.value = value
	v.set = true
	v.mu.Unlock()
}

// MarshalJSON encodes the items as an array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	items := l.Items()
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// UnmarshalJSON replaces the items without notifying.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	l.restore(items)
	return nil
}

// MarshalYAML encodes the items as a sequence.
func (l *List[T]) MarshalYAML() (any, error) {
	items := l.Items()
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// UnmarshalYAML replaces the items without notifying.
func (l *List[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}
	l.restore(items)
	return nil
}

func (l *List[T]) restore(items []T) {
	l.mu.Lock()
	l.items = items
	l.mu.Unlock()
}
