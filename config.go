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

const (
	// DefaultMaximumNestingDepth is the depth limit used when none is configured
	DefaultMaximumNestingDepth = 512

	// UndefinedMaximumNestingDepth marks the nesting depth as unbounded
	UndefinedMaximumNestingDepth = -1
)

// Configuration is the set of transformers every configuration layer provides.
// T is the layer's own type, so deriving from a specialized configuration
// never falls back to a less specialized one.
type Configuration[T any] interface {
	Clone() T
	WithKeepStrings(keepStrings bool) T
	WithMaxNestingDepth(maxNestingDepth int) T
	KeepStrings() bool
	MaxNestingDepth() int
}

var _ Configuration[ParserConfiguration] = ParserConfiguration{}

// ParserConfiguration holds the options shared by every XML converter.
// The zero value keeps no strings and has a depth limit of 0; use
// NewParserConfiguration for the defaults.
type ParserConfiguration struct {
	keepStrings     bool
	maxNestingDepth int
}

// NewParserConfiguration returns the default base configuration
func NewParserConfiguration() ParserConfiguration {
	return newParserConfiguration(false, DefaultMaximumNestingDepth)
}

func newParserConfiguration(keepStrings bool, maxNestingDepth int) ParserConfiguration {
	return ParserConfiguration{
		keepStrings:     keepStrings,
		maxNestingDepth: maxNestingDepth,
	}
}

// Clone returns a copy of the configuration.
// Fields holding maps or slices must be copied here, not shared.
func (c ParserConfiguration) Clone() ParserConfiguration {
	return newParserConfiguration(c.keepStrings, c.maxNestingDepth)
}

// WithKeepStrings returns a copy with keepStrings replaced
func (c ParserConfiguration) WithKeepStrings(keepStrings bool) ParserConfiguration {
	clone := c.Clone()
	clone.keepStrings = keepStrings
	return clone
}

// WithMaxNestingDepth returns a copy with the depth limit replaced.
// The value is stored as given; zero and negative values are left for the
// converter to interpret.
func (c ParserConfiguration) WithMaxNestingDepth(maxNestingDepth int) ParserConfiguration {
	clone := c.Clone()
	clone.maxNestingDepth = maxNestingDepth
	return clone
}

// KeepStrings reports whether leaf text must be kept as raw strings
func (c ParserConfiguration) KeepStrings() bool {
	return c.keepStrings
}

// MaxNestingDepth returns the configured depth limit
func (c ParserConfiguration) MaxNestingDepth() int {
	return c.maxNestingDepth
}

// IsUnboundedNestingDepth reports whether the depth limit is UndefinedMaximumNestingDepth
func (c ParserConfiguration) IsUnboundedNestingDepth() bool {
	return c.maxNestingDepth == UndefinedMaximumNestingDepth
}

func (c ParserConfiguration) Equal(other ParserConfiguration) bool {
	return c.keepStrings == other.keepStrings && c.maxNestingDepth == other.maxNestingDepth
}
