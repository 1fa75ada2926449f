package core

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Normalizer interface {
	Normalize(content string) (string, error)
}

// SimpleNormalizer strips formatting markup, decodes entities and collapses
// spaces while keeping line breaks. Text that only looks like a tag, such as
// "List<String>" or an unterminated "a<b", is kept as written.
type SimpleNormalizer struct{}

func NewSimpleNormalizer() *SimpleNormalizer {
	return &SimpleNormalizer{}
}

var blockTags = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Hr: true,
	atom.Ul: true, atom.Ol: true, atom.Li: true, atom.Dl: true, atom.Dt: true, atom.Dd: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Table: true, atom.Tr: true, atom.Blockquote: true, atom.Pre: true,
	atom.Section: true, atom.Article: true, atom.Header: true, atom.Footer: true,
}

var inlineTags = map[atom.Atom]bool{
	atom.B: true, atom.I: true, atom.U: true, atom.S: true, atom.Em: true, atom.Strong: true,
	atom.Span: true, atom.A: true, atom.Small: true, atom.Sub: true, atom.Sup: true,
	atom.Code: true, atom.Mark: true, atom.Font: true, atom.Strike: true,
	atom.Td: true, atom.Th: true, atom.Thead: true, atom.Tbody: true,
	atom.Html: true, atom.Head: true, atom.Body: true,
}

func (n *SimpleNormalizer) Normalize(content string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(content))
	var sb strings.Builder
	var skip atom.Atom

	newline := func() {
		s := sb.String()
		if len(s) > 0 && !strings.HasSuffix(s, "\n") {
			sb.WriteByte('\n')
		}
	}
	// Tokenizer methods rewrite the buffer in place, so raw is copied first.
	literal := func(raw string) {
		if skip == 0 {
			sb.WriteString(html.UnescapeString(raw))
		}
	}

	for {
		tt := z.Next()
		raw := string(z.Raw())

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			// an unterminated tag at end of input
			literal(raw)
			return cleanLines(sb.String()), nil

		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
			}

		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			switch {
			case tt == html.StartTagToken && (a == atom.Script || a == atom.Style):
				skip = a
			case tt == html.EndTagToken && a != 0 && a == skip:
				skip = 0
			case skip != 0:
			case blockTags[a]:
				newline()
			case inlineTags[a]:
			default:
				literal(raw)
			}

		case html.CommentToken:
			if !strings.HasPrefix(raw, "<!--") {
				literal(raw)
			}

		case html.DoctypeToken:
		}
	}
}

// cleanLines collapses spaces within each line, keeps at most one blank line
// between paragraphs and trims blank lines at both ends.
func cleanLines(s string) string {
	var out []string
	blank := false
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blank = len(out) > 0
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// NormalizeOffer cleans the free-text fields employers tend to paste as
// HTML. Fields that fail to tokenize are kept as is.
func NormalizeOffer(n Normalizer, o JobOffer) JobOffer {
	clean := func(s string) string {
		out, err := n.Normalize(s)
		if err != nil {
			return s
		}
		return out
	}
	o.Description = clean(o.Description)
	o.Responsibilities = clean(o.Responsibilities)
	o.Requirements = clean(o.Requirements)
	return o
}
