package bcv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/mwatts/biblelib/core/books"
	"github.com/mwatts/biblelib/core/errors"
)

// scriptureRef is the participle grammar for single references:
// a book name, optionally followed by a chapter and a verse.
// Examples: "MRK", "Mark 4", "1 Corinthians 4:8", "PSA 119:title".
type scriptureRef struct {
	Book    string  `parser:"@Book"`
	Chapter *string `parser:"( @Number"`
	Verse   *string `parser:"  ( ':' @(Number | 'title') )? )?"`
}

// refLexer tokenizes scripture references. Book names may carry a leading
// ordinal digit ("1 John", "2SA") and internal words ("Song of Songs").
var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Book", Pattern: `(?:\d\s*)?[A-Za-z]+(?:\s+(?:of\s+)?[A-Za-z]+)*\.?`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var refParser = participle.MustBuild[scriptureRef](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// bookResolver turns the textual book portion of a reference into Book
// metadata; each reference scheme resolves differently.
type bookResolver func(string) (books.Book, error)

// parseRef parses "book [chapter[:verse]]" and assembles the identifier at
// the granularity the reference provides.
func parseRef(ref string, resolve bookResolver) (Ref, error) {
	parsed, err := refParser.ParseString("", strings.TrimSpace(ref))
	if err != nil {
		return nil, errors.NewParse("reference", "", fmt.Sprintf("%q: %v", ref, err))
	}
	book, err := resolve(strings.TrimSuffix(strings.TrimSpace(parsed.Book), "."))
	if err != nil {
		return nil, err
	}
	if parsed.Chapter == nil {
		b, err := NewBID(book.USFMNumber)
		return b, err
	}
	chapter, err := pad3String(*parsed.Chapter)
	if err != nil {
		return nil, err
	}
	if parsed.Verse == nil {
		c, err := NewBCID(book.USFMNumber + chapter)
		return c, err
	}
	verse, err := pad3String(*parsed.Verse)
	if err != nil {
		return nil, err
	}
	v, err := NewBCVID(book.USFMNumber + chapter + verse)
	return v, err
}

// FromUSFM parses a USFM-style reference like "MRK 4:8" into a BID, BCID,
// or BCVID depending on granularity. It does not handle ranges, and does
// not check chapter or verse numbers against the book's extent.
func FromUSFM(ref string) (Ref, error) {
	return parseRef(ref, func(name string) (books.Book, error) {
		return books.ByUSFMName(name)
	})
}

// FromOSIS parses an OSIS-style reference like "Mark 4:8". The book name
// must be correctly cased.
func FromOSIS(ref string) (Ref, error) {
	return parseRef(ref, books.FromOSIS)
}

// FromName parses a full-name reference like "1 Corinthians 4:8",
// matching common English names case-insensitively.
func FromName(ref string) (Ref, error) {
	return parseRef(ref, books.FromName)
}

// FromLogos parses a Logos-style reference like "bible.62.4.8" (or bare
// "62.4.8") at up to verse granularity.
func FromLogos(ref string) (Ref, error) {
	base := strings.TrimPrefix(ref, "bible.")
	parts := strings.SplitN(base, ".", 3)
	book, err := books.FromLogos(parts[0])
	if err != nil {
		return nil, err
	}
	if len(parts) == 1 {
		b, err := NewBID(book.USFMNumber)
		return b, err
	}
	chapter, err := pad3String(parts[1])
	if err != nil {
		return nil, err
	}
	if len(parts) == 2 {
		c, err := NewBCID(book.USFMNumber + chapter)
		return c, err
	}
	verse, err := pad3String(parts[2])
	if err != nil {
		return nil, err
	}
	v, err := NewBCVID(book.USFMNumber + chapter + verse)
	return v, err
}

// FromUBS parses a 14-character UBS MARBLE reference into a BCVWPID. UBS
// references carry an extra leading digit, a segment code that is "00"
// outside the DC and LXX books, and doubled word numbers.
func FromUBS(ref string) (BCVWPID, error) {
	if len(ref) != 14 || !allDigits(ref) {
		return BCVWPID{}, errors.NewValidation("ref", fmt.Sprintf("%q is not a UBS reference", ref))
	}
	if ref[0] != '0' {
		return BCVWPID{}, errors.NewValidation("ref", fmt.Sprintf("leading digit should be 0: %q", ref))
	}
	if ref[9:11] != "00" {
		return BCVWPID{}, errors.NewValidation("ref", fmt.Sprintf("segment code should be 00: %q", ref))
	}
	word, err := strconv.Atoi(ref[11:14])
	if err != nil || word%2 != 0 {
		// MARBLE only uses even word positions
		return BCVWPID{}, errors.NewValidation("ref", fmt.Sprintf("word code should be even: %q", ref))
	}
	return NewBCVWPID(ref[1:3] + ref[3:6] + ref[6:9] + Pad3(word/2))
}
