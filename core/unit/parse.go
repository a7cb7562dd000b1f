package unit

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/mwatts/biblelib/core/bcv"
	"github.com/mwatts/biblelib/core/books"
	"github.com/mwatts/biblelib/core/errors"
)

// rangeRef is the participle grammar for possibly-hyphenated references.
// Examples: "Mark", "Mark 2", "Mark 2-5", "Mark 1:40-2:2", "Mark 1:1-5".
type rangeRef struct {
	Book       string `parser:"@Book"`
	Chapter    *int   `parser:"( @Number"`
	Verse      *int   `parser:"  ( ':' @Number )?"`
	ChapterEnd *int   `parser:"  ( '-' ( @Number"`
	VerseEnd   *int   `parser:"      ( ':' @Number )? )? )? )?"`
}

var rangeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Book", Pattern: `(?:\d\s*)?[A-Za-z]+(?:\s+(?:of\s+)?[A-Za-z]+)*\.?`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var rangeParser = participle.MustBuild[rangeRef](
	participle.Lexer(rangeLexer),
	participle.Elide("Whitespace"),
)

// RangeRef is the result of parsing a range reference: exactly one of
// Chapters or Verses is set, depending on the granularity of the input.
type RangeRef struct {
	Chapters *ChapterRange
	Verses   *VerseRange
}

// IDs returns the enumerated identifiers of whichever range is set, as
// strings.
func (r RangeRef) IDs() []string {
	var out []string
	switch {
	case r.Chapters != nil:
		for _, id := range r.Chapters.Enumerate() {
			out = append(out, id.String())
		}
	case r.Verses != nil:
		for _, id := range r.Verses.Enumerate() {
			out = append(out, id.String())
		}
	}
	return out
}

// resolveBookName resolves the book portion of a human reference, trying
// the common English name, then the OSIS id, then the USFM name.
func resolveBookName(name string) (books.Book, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	if b, err := books.FromName(name); err == nil {
		return b, nil
	}
	if b, err := books.FromOSIS(name); err == nil {
		return b, nil
	}
	return books.ByUSFMName(name)
}

// ParseRange parses a reference that may span a range, returning a
// chapter-level or verse-level range depending on what the reference
// specifies:
//
//	"Mark"          all chapters of Mark
//	"Mark 2"        chapter 2 (vacuous chapter range)
//	"Mark 2-5"      chapters 2 through 5
//	"Mark 3:16"     one verse (vacuous verse range)
//	"Mark 1:1-5"    verses within one chapter
//	"Mark 1:40-2:2" verses across chapters
//	"Mark 1-2:5"    chapter 1 verse 1 through chapter 2 verse 5
//
// Comma-separated compound references are not handled.
func ParseRange(ref string) (RangeRef, error) {
	if strings.Contains(ref, ",") {
		return RangeRef{}, errors.NewParse("reference", "", fmt.Sprintf("can't handle complex range: %q", ref))
	}
	parsed, err := rangeParser.ParseString("", strings.TrimSpace(ref))
	if err != nil {
		return RangeRef{}, errors.NewParse("reference", "", fmt.Sprintf("%q: %v", ref, err))
	}
	book, err := resolveBookName(parsed.Book)
	if err != nil {
		return RangeRef{}, err
	}

	// "Genesis 1:1-5" parses with the 5 in ChapterEnd; when the start
	// has a verse and the end is a bare number, that number is a verse.
	if parsed.Verse != nil && parsed.ChapterEnd != nil && parsed.VerseEnd == nil {
		parsed.VerseEnd = parsed.ChapterEnd
		parsed.ChapterEnd = nil
	}

	num := book.USFMNumber
	switch {
	case parsed.Chapter == nil:
		// whole book
		bid, err := bcv.NewBID(num)
		if err != nil {
			return RangeRef{}, err
		}
		last, err := ChapterCount(bid)
		if err != nil {
			return RangeRef{}, err
		}
		return chapterRangeRef(num, 1, last)
	case parsed.Verse == nil && parsed.ChapterEnd == nil && parsed.VerseEnd == nil:
		// single chapter
		return chapterRangeRef(num, *parsed.Chapter, *parsed.Chapter)
	case parsed.Verse == nil && parsed.ChapterEnd != nil && parsed.VerseEnd == nil:
		// chapter span
		return chapterRangeRef(num, *parsed.Chapter, *parsed.ChapterEnd)
	}

	// verse-level: fill the implied boundaries
	startChap := *parsed.Chapter
	startVerse := 1
	if parsed.Verse != nil {
		startVerse = *parsed.Verse
	}
	endChap := startChap
	if parsed.ChapterEnd != nil {
		endChap = *parsed.ChapterEnd
	}
	endVerse := startVerse
	if parsed.VerseEnd != nil {
		endVerse = *parsed.VerseEnd
	}
	return verseRangeRef(num, startChap, startVerse, endChap, endVerse)
}

func chapterRangeRef(book string, start, end int) (RangeRef, error) {
	startID, err := bcv.MakeBCID(book, start)
	if err != nil {
		return RangeRef{}, err
	}
	endID, err := bcv.MakeBCID(book, end)
	if err != nil {
		return RangeRef{}, err
	}
	r, err := NewChapterRange(startID, endID)
	if err != nil {
		return RangeRef{}, err
	}
	return RangeRef{Chapters: &r}, nil
}

func verseRangeRef(book string, startChap, startVerse, endChap, endVerse int) (RangeRef, error) {
	startID, err := bcv.MakeBCVID(book, startChap, startVerse)
	if err != nil {
		return RangeRef{}, err
	}
	endID, err := bcv.MakeBCVID(book, endChap, endVerse)
	if err != nil {
		return RangeRef{}, err
	}
	r, err := NewVerseRange(startID, endID)
	if err != nil {
		return RangeRef{}, err
	}
	return RangeRef{Verses: &r}, nil
}
