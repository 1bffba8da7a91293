package lint

import "github.com/alecthomas/participle/v2/lexer"

// File is a parsed board description: a sequence of top-level sections
type File struct {
	Sections []*Section `@@*`
}

// Section is a brace-delimited block such as {BOARD ...}, {NET=name ...}
// or a nested {POLYGON ...}. The first field names it.
type Section struct {
	Pos    lexer.Position
	Fields []*Field `LBrace @@*`
	Body   []*Node  `@@* RBrace`
}

// Node is one entry of a section body
type Node struct {
	Record *Record  `  @@`
	Block  *Section `| @@`
}

// Record is a parenthesized record such as (SEG X1=... L=component)
type Record struct {
	Pos    lexer.Position
	Fields []*Field `LParen @@* RParen`
}

// Field is KEY=value..., or a run of bare comma separated words
type Field struct {
	Key    string   `@Key?`
	Values []string `( @Word | Comma )+`
}

func keyword(fields []*Field) string {
	if len(fields) == 0 {
		return ""
	}
	if f := fields[0]; f.Key != "" {
		return f.Key
	} else if len(f.Values) > 0 {
		return f.Values[0]
	}
	return ""
}

func attr(fields []*Field, key string) (string, bool) {
	for i, f := range fields {
		// the head field of {NET=name ...} is the keyword, not an attribute
		if i == 0 && f.Key == "" {
			continue
		}
		if f.Key == key && len(f.Values) > 0 {
			return f.Values[0], true
		}
	}
	return "", false
}

// Keyword returns the section name (VERSION, BOARD, NET, POLYGON, ...)
func (s *Section) Keyword() string { return keyword(s.Fields) }

// Value returns the words following KEYWORD=, e.g. the net name
func (s *Section) Value() []string {
	if len(s.Fields) == 0 || s.Fields[0].Key == "" {
		return nil
	}
	return s.Fields[0].Values
}

// Attr returns the first value of KEY= in the section header
func (s *Section) Attr(key string) (string, bool) { return attr(s.Fields, key) }

// Keyword returns the record name (SEG, VIA, PERIMETER_ARC, ...)
func (r *Record) Keyword() string { return keyword(r.Fields) }

// Attr returns the first value of KEY= in the record
func (r *Record) Attr(key string) (string, bool) { return attr(r.Fields, key) }
