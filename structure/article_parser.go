/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure

import (
	"regexp"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
)

var articleHeaderRe = regexp.MustCompile(`^(([0-9]+:)?([0-9]+(/[A-Z])?))\. ?§ +(.*)$`)

// articleParserFactory recognizes an Article's "N. §" header line.
type articleParserFactory struct {
	context ParsingContext
	lastID  *identifier.ArticleIdentifier
}

func newArticleParserFactory(context ParsingContext) *articleParserFactory {
	return &articleParserFactory{context: context}
}

// tryCreateFromHeader recognizes l as an Article header. When
// expectedID is non-nil (block-amendment re-parsing seeded with a
// known target id), the parsed id must equal it exactly rather than
// merely be a valid successor, mirroring the Rust factory's optional
// expected-identifier parameter.
func (f *articleParserFactory) tryCreateFromHeader(l line.IndentedLine, expectedID *identifier.ArticleIdentifier) (*articleParser, bool) {
	m := articleHeaderRe.FindStringSubmatchIndex(l.Content())
	if m == nil {
		return nil, false
	}
	idStr := l.Content()[m[2]:m[3]]
	id, err := identifier.ParseArticleIdentifier(idStr)
	if err != nil {
		return nil, false
	}
	if expectedID != nil {
		if id != *expectedID {
			return nil, false
		}
	} else if f.lastID != nil && !id.IsNextFrom(*f.lastID) {
		return nil, false
	}
	f.lastID = &id
	rest := l.SliceBytes(m[10], intPtr(m[11]))
	return &articleParser{identifier: id, context: f.context, contents: []line.IndentedLine{rest}}, true
}

func intPtr(n int) *int { return &n }

type articleParser struct {
	identifier identifier.ArticleIdentifier
	context    ParsingContext
	contents   []line.IndentedLine
}

func (p *articleParser) feedLine(l line.IndentedLine) {
	if !l.IsEmpty() {
		p.contents = append(p.contents, l)
	}
}

func (p *articleParser) finish() (*Article, error) {
	paragraphs, err := parseArticleBody(p.contents, p.context)
	if err != nil {
		return nil, err
	}
	return &Article{Identifier: p.identifier, Children: paragraphs}, nil
}

// parseArticleBody splits an Article's raw lines into its Paragraph
// children. The generic SAE engine's Paragraph level is the same one
// used elsewhere in this package, but an Article's identifier type is
// really "optional NumericIdentifier": when the very first line carries
// no "(N)" header, the whole article is a single unlabelled paragraph,
// still parsed for quoted-block/point children rather than flattened to
// plain text.
func parseArticleBody(lines []line.IndentedLine, context ParsingContext) ([]Paragraph, error) {
	pp := paragraphParser(context)
	if _, _, ok := pp.parseHeader(lines[0]); !ok {
		body, err := pp.parseOne(identifier.NumericIdentifier{}, lines, context)
		if err != nil {
			return nil, err
		}
		return []Paragraph{{Body: body}}, nil
	}
	// An Article has no wrap-up slot of its own and may legitimately
	// consist of a single "(1)" paragraph, so neither the wrap-up split
	// nor the children-count check applies here.
	params := saeParseParams{parseWrapUp: false, checkChildrenCount: false, context: context}
	elems, _, err := pp.extractMultiple(lines, params, nil)
	if err != nil {
		return nil, err
	}
	return toParagraphList(elems), nil
}
