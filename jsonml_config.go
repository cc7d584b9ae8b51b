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

import "fmt"

var _ Configuration[JSONMLParserConfiguration] = JSONMLParserConfiguration{}

// JSONMLParserConfiguration configures the XML to JSONML converter.
// Values are immutable: every With method returns a new configuration.
// The zero value has a depth limit of 0, which rejects every element; start
// from DefaultConfiguration or NewJSONMLParserConfiguration, and seed struct
// fields with one of them before decoding a config file into them.
type JSONMLParserConfiguration struct {
	// base is a named field rather than embedded so that no base transformer
	// is promoted with the base return type.
	base ParserConfiguration

	// preserveOrder selects an insertion-ordered attribute map (default: false)
	preserveOrder bool
}

var (
	originalPreset    = NewJSONMLParserConfiguration()
	keepStringsPreset = originalPreset.WithKeepStrings(true)
)

// DefaultConfiguration returns the original converter configuration, which
// tries to convert leaf text into numbers, booleans and null.
func DefaultConfiguration() JSONMLParserConfiguration {
	return originalPreset
}

// KeepStringsConfiguration returns the original configuration except that all
// values are kept as strings.
func KeepStringsConfiguration() JSONMLParserConfiguration {
	return keepStringsPreset
}

// NewJSONMLParserConfiguration returns the default converter configuration
func NewJSONMLParserConfiguration() JSONMLParserConfiguration {
	return newJSONMLParserConfiguration(false, DefaultMaximumNestingDepth, false)
}

func newJSONMLParserConfiguration(keepStrings bool, maxNestingDepth int, preserveOrder bool) JSONMLParserConfiguration {
	return JSONMLParserConfiguration{
		base:          newParserConfiguration(keepStrings, maxNestingDepth),
		preserveOrder: preserveOrder,
	}
}

// Clone returns a copy of the configuration
func (c JSONMLParserConfiguration) Clone() JSONMLParserConfiguration {
	return JSONMLParserConfiguration{
		base:          c.base.Clone(),
		preserveOrder: c.preserveOrder,
	}
}

// WithKeepStrings returns a copy with keepStrings replaced; preserveOrder is kept
func (c JSONMLParserConfiguration) WithKeepStrings(keepStrings bool) JSONMLParserConfiguration {
	clone := c.Clone()
	clone.base = c.base.WithKeepStrings(keepStrings)
	return clone
}

// WithMaxNestingDepth returns a copy with the depth limit replaced. The value
// is not validated; see ParserConfiguration.WithMaxNestingDepth.
func (c JSONMLParserConfiguration) WithMaxNestingDepth(maxNestingDepth int) JSONMLParserConfiguration {
	clone := c.Clone()
	clone.base = c.base.WithMaxNestingDepth(maxNestingDepth)
	return clone
}

// WithPreserveOrder returns a copy that asks the converter to keep attributes
// in document order.
func (c JSONMLParserConfiguration) WithPreserveOrder(preserveOrder bool) JSONMLParserConfiguration {
	clone := c.Clone()
	clone.preserveOrder = preserveOrder
	return clone
}

// KeepStrings reports whether leaf text must be kept as raw strings
func (c JSONMLParserConfiguration) KeepStrings() bool {
	return c.base.KeepStrings()
}

// MaxNestingDepth returns the configured depth limit
func (c JSONMLParserConfiguration) MaxNestingDepth() int {
	return c.base.MaxNestingDepth()
}

// IsUnboundedNestingDepth reports whether the depth limit is UndefinedMaximumNestingDepth
func (c JSONMLParserConfiguration) IsUnboundedNestingDepth() bool {
	return c.base.IsUnboundedNestingDepth()
}

// PreserveOrder reports whether attributes must be stored in insertion order
func (c JSONMLParserConfiguration) PreserveOrder() bool {
	return c.preserveOrder
}

// Base returns the options shared with other converters
func (c JSONMLParserConfiguration) Base() ParserConfiguration {
	return c.base.Clone()
}

// Equal reports whether both configurations hold the same values
func (c JSONMLParserConfiguration) Equal(other JSONMLParserConfiguration) bool {
	return c.base.Equal(other.base) && c.preserveOrder == other.preserveOrder
}

func (c JSONMLParserConfiguration) String() string {
	return fmt.Sprintf("keepStrings=%t maxNestingDepth=%d preserveOrder=%t",
		c.KeepStrings(), c.MaxNestingDepth(), c.preserveOrder)
}
