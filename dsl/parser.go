// Package dsl 解析 .label 标签描述文件：纸张型号、模板槽位与逐行配置。
package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)(?:pt|px)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[(),=;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// File is the root AST node for a label description.
type File struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Blocks []*Block       `parser:"Newline* ( @@ ( ';' | Newline )* )*"`
}

// Block represents a top-level declaration (stock/font/template/lines).
type Block struct {
	Stock    *StockDecl     `parser:"  @@"`
	Font     *FontDecl      `parser:"| @@"`
	Template *TemplateBlock `parser:"| @@"`
	Lines    *LinesBlock    `parser:"| @@"`
}

// Kind returns the human-readable block type.
func (b *Block) Kind() string {
	switch {
	case b == nil:
		return "unknown"
	case b.Stock != nil:
		return "stock"
	case b.Font != nil:
		return "font"
	case b.Template != nil:
		return "template"
	case b.Lines != nil:
		return "lines"
	default:
		return "unknown"
	}
}

// StockDecl 选择标签纸型号，例如 `stock "30277"` 或 `stock 30277`。
type StockDecl struct {
	Pos lexer.Position `parser:"" json:"-"`
	Raw string         `parser:"'stock' @( String | Number | Ident )"`
}

// Name returns the stock identifier without quotes.
func (s *StockDecl) Name() string {
	if unquoted, err := strconv.Unquote(s.Raw); err == nil {
		return unquoted
	}
	return s.Raw
}

// FontDecl 注册一个额外字体：`font Barcode "embed:Go Mono"` 或 `font Body "fonts/body.ttf"`。
type FontDecl struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Name string         `parser:"'font' @( Ident | String )"`
	Src  StringLiteral  `parser:"@String"`
}

// Family returns the declared family name without quotes.
func (f *FontDecl) Family() string {
	if unquoted, err := strconv.Unquote(f.Name); err == nil {
		return unquoted
	}
	return f.Name
}

// TemplateBlock 描述模板模式的五个槽位（line1..line4, identifier）。
type TemplateBlock struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Name  string         `parser:"'template' @Ident?"`
	Lines []*Line        `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// LinesBlock 描述逐行模式，行按出现顺序绘制。
type LinesBlock struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Lines []*Line        `parser:"'lines' '{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Line is a single slot declaration: `<slot> "<content>" key=value flag ...`.
type Line struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Slot    string         `parser:"@Ident"`
	Content StringLiteral  `parser:"@String"`
	Attrs   []*Attribute   `parser:"@@*"`
}

// Attribute is either `key=value` or a bare flag such as `barcode`.
type Attribute struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"( '=' @@ )?"`
}

// Value represents attribute values.
type Value struct {
	Tuple  []string       `parser:"  '(' @Number ( ','? @Number )* ')'"`
	String *StringLiteral `parser:"| @String"`
	Number *string        `parser:"| @Number"`
	Ident  *string        `parser:"| @Ident"`
}

// Text returns the value as written, without quotes.
func (v *Value) Text() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Number != nil:
		return *v.Number
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a label description from an io.Reader; name is used in error positions.
func Parse(name string, r io.Reader) (*File, error) {
	return fileParser.Parse(name, r)
}

// ParseString parses a label description from a string.
func ParseString(input string) (*File, error) {
	return fileParser.ParseString("", input)
}
