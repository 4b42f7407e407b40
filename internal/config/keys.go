package config

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Get returns the value at a dotted key such as "model.panel_cost" or
// "output". Sections are returned as maps.
func (c *Config) Get(key string) (any, error) {
	tree, err := c.toMap()
	if err != nil {
		return nil, err
	}

	var cur any = tree
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
		cur, ok = m[part]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
	}
	return cur, nil
}

// Set assigns a value at a dotted leaf key. The value is parsed as a YAML
// scalar so "0.04" sets a number and "seasonal" a string; the result must
// decode into the typed configuration.
func (c *Config) Set(key, value string) error {
	tree, err := c.toMap()
	if err != nil {
		return err
	}

	parts := strings.Split(key, ".")
	parent := tree
	for _, part := range parts[:len(parts)-1] {
		next, ok := parent[part].(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
		parent = next
	}

	leaf := parts[len(parts)-1]
	existing, ok := parent[leaf]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if _, isSection := existing.(map[string]any); isSection {
		return fmt.Errorf("%w: %s is a section, not a value", ErrUnknownKey, key)
	}

	var parsed any
	if err = yaml.Unmarshal([]byte(value), &parsed); err != nil {
		return fmt.Errorf("parsing value for %s: %w", key, err)
	}
	parent[leaf] = parsed

	data, err := yaml.Marshal(tree)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	updated := *c
	if err = yaml.Unmarshal(data, &updated); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	*c = updated
	return nil
}

// List returns every leaf key with its value, sorted by key.
func (c *Config) List() ([]KeyValue, error) {
	tree, err := c.toMap()
	if err != nil {
		return nil, err
	}

	var out []KeyValue
	flatten("", tree, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// KeyValue is one entry returned by List.
type KeyValue struct {
	Key   string
	Value any
}

func (c *Config) toMap() (map[string]any, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	tree := map[string]any{}
	if err = yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return tree, nil
}

func flatten(prefix string, m map[string]any, out *[]KeyValue) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			flatten(key, child, out)
			continue
		}
		*out = append(*out, KeyValue{Key: key, Value: v})
	}
}
