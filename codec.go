// Copyright 2025 EasyAgent
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jsonml

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// document is the serialized form. Pointer fields tell an absent key apart
// from a zero value.
type document struct {
	KeepStrings     *bool `yaml:"keepStrings,omitempty" json:"keepStrings,omitempty"`
	MaxNestingDepth *int  `yaml:"maxNestingDepth,omitempty" json:"maxNestingDepth,omitempty"`
	PreserveOrder   *bool `yaml:"preserveOrder,omitempty" json:"preserveOrder,omitempty"`
}

var documentKeys = map[string]bool{
	"keepStrings":     true,
	"maxNestingDepth": true,
	"preserveOrder":   true,
}

func (c JSONMLParserConfiguration) document() document {
	keepStrings := c.KeepStrings()
	maxNestingDepth := c.MaxNestingDepth()
	preserveOrder := c.preserveOrder
	return document{
		KeepStrings:     &keepStrings,
		MaxNestingDepth: &maxNestingDepth,
		PreserveOrder:   &preserveOrder,
	}
}

// configuration fills absent keys from the default preset
func (d document) configuration() JSONMLParserConfiguration {
	result := DefaultConfiguration()
	if d.KeepStrings != nil {
		result = result.WithKeepStrings(*d.KeepStrings)
	}
	if d.MaxNestingDepth != nil {
		result = result.WithMaxNestingDepth(*d.MaxNestingDepth)
	}
	if d.PreserveOrder != nil {
		result = result.WithPreserveOrder(*d.PreserveOrder)
	}
	return result
}

// ParseYAML builds a configuration from a YAML document.
// An empty document yields the default configuration.
func ParseYAML(data []byte) (JSONMLParserConfiguration, error) {
	result := DefaultConfiguration()
	if err := yaml.Unmarshal(data, &result); err != nil {
		if !errors.Is(err, ErrInvalidConfiguration) {
			err = fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		return DefaultConfiguration(), err
	}
	return result, nil
}

// MarshalYAML implements yaml.Marshaler
func (c JSONMLParserConfiguration) MarshalYAML() (interface{}, error) {
	return c.document(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It replaces the whole value of
// the destination, so it is meant for decoding into fresh variables only.
// yaml.v3 does not call it for a null node; the destination is left as it was.
func (c *JSONMLParserConfiguration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected a mapping at line %d", ErrInvalidConfiguration, node.Line)
	}
	if err := checkYAMLKeys(node); err != nil {
		return err
	}

	var doc document
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	*c = doc.configuration()
	return nil
}

// checkYAMLKeys rejects unknown keys, following merge keys into the mappings
// they pull in.
func checkYAMLKeys(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if err := checkYAMLKeys(item); err != nil {
				return err
			}
		}
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("%w: expected a mapping at line %d", ErrInvalidConfiguration, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if key.Kind == yaml.ScalarNode && key.ShortTag() == "!!merge" {
			if err := checkYAMLKeys(node.Content[i+1]); err != nil {
				return err
			}
			continue
		}
		if !documentKeys[key.Value] {
			return fmt.Errorf("%w: unknown key %q at line %d", ErrInvalidConfiguration, key.Value, key.Line)
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (c JSONMLParserConfiguration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.document())
}

// UnmarshalJSON implements json.Unmarshaler with the same rules as
// UnmarshalYAML: keys match exactly and null leaves the destination unchanged.
func (c *JSONMLParserConfiguration) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	for key := range fields {
		if !documentKeys[key] {
			return fmt.Errorf("%w: unknown key %q", ErrInvalidConfiguration, key)
		}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	*c = doc.configuration()
	return nil
}
