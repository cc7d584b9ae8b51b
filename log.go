package jsonml

import "github.com/rs/zerolog"

var (
	_ zerolog.LogObjectMarshaler = ParserConfiguration{}
	_ zerolog.LogObjectMarshaler = JSONMLParserConfiguration{}
)

// MarshalZerologObject lets converters attach the configuration to log events
// with Event.Object.
func (c ParserConfiguration) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("keepStrings", c.keepStrings).
		Int("maxNestingDepth", c.maxNestingDepth)
}

func (c JSONMLParserConfiguration) MarshalZerologObject(e *zerolog.Event) {
	c.base.MarshalZerologObject(e)
	e.Bool("preserveOrder", c.preserveOrder)
}
