package css

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into structured rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. Parsing never fails, anything that
// cannot be represented is skipped and recorded in Stylesheet.Warnings.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	var group []string
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			p.checkErr(parser, sheet)
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := strings.ToLower(string(data))
			if atRule == "@media" {
				mb := &MediaBlock{Query: joinTokens(parser.Values())}
				mb.Rules = p.parseMediaRules(parser, sheet)
				p.log.Debug("Parsed @media block", zap.String("query", mb.Query), zap.Int("rules", len(mb.Rules)))
				sheet.Items = append(sheet.Items, StylesheetItem{MediaBlock: mb})
				continue
			}
			p.skipAtRuleBlock(parser)
			sheet.warn("unsupported at-rule block: %s", atRule)
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.AtRuleGrammar:
			atRule := strings.ToLower(string(data))
			if atRule == "@import" {
				if url := extractImportURL(parser.Values()); url != "" {
					sheet.Items = append(sheet.Items, StylesheetItem{Import: &url})
					p.log.Debug("Parsed @import", zap.String("url", url))
				}
				continue
			}
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.QualifiedRuleGrammar:
			// selector before a comma, the rest of the group follows
			group = append(group, selectorText(data, parser.Values()))

		case css.BeginRulesetGrammar:
			group = append(group, selectorText(data, parser.Values()))
			rule := sheet.newRule(strings.Join(group, ", "), p.parseDeclarations(parser))
			sheet.Items = append(sheet.Items, StylesheetItem{Rule: rule})
			group = nil
		}
	}
}

func (p *Parser) checkErr(parser *css.Parser, sheet *Stylesheet) {
	if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
		sheet.warn("parse error: %v", err)
		p.log.Debug("CSS parse error", zap.Error(err))
	}
}

// parseDeclarations collects declarations until the end of the ruleset.
func (p *Parser) parseDeclarations(parser *css.Parser) []Declaration {
	var decls []Declaration
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if values := parser.Values(); len(values) > 0 {
				decls = append(decls, Declaration{Property: string(data), Value: joinTokens(values)})
			}
		}
	}
}

// parseMediaRules parses rules inside an @media block.
func (p *Parser) parseMediaRules(parser *css.Parser, sheet *Stylesheet) []Rule {
	var (
		rules []Rule
		group []string
	)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return rules

		case css.BeginAtRuleGrammar:
			p.skipAtRuleBlock(parser)
			sheet.warn("nested at-rule block in @media: %s", data)

		case css.QualifiedRuleGrammar:
			group = append(group, selectorText(data, parser.Values()))

		case css.BeginRulesetGrammar:
			group = append(group, selectorText(data, parser.Values()))
			rules = append(rules, *sheet.newRule(strings.Join(group, ", "), p.parseDeclarations(parser)))
			group = nil
		}
	}
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// selectorText rebuilds selector text from grammar data and value tokens.
func selectorText(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}

// joinTokens joins token data collapsing whitespace runs into one space.
func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	space := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = sb.Len() > 0
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.Write(t.Data)
	}
	return sb.String()
}

// extractImportURL extracts the URL from @import tokens.
// Handles: @import "url"; @import url("url"); @import url(url);
func extractImportURL(tokens []css.Token) string {
	for _, t := range tokens {
		switch t.TokenType {
		case css.StringToken:
			return unquote(string(t.Data))
		case css.URLToken:
			s := strings.TrimPrefix(string(t.Data), "url(")
			s = strings.TrimSuffix(s, ")")
			return unquote(strings.TrimSpace(s))
		}
	}
	return ""
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
