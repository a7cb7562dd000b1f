// Package bcv implements canonical Bible reference identifiers.
//
// Identifiers use fixed-width numeric encodings at four granularities:
//
//	BID     "41"            book (USFM book number)
//	BCID    "41004"         book + chapter
//	BCVID   "41004003"      book + chapter + verse
//	BCVWPID "n410040030011" book + chapter + verse + word + part,
//	                        with a canon prefix ("o" OT, "n" NT)
//
// All values are immutable and totally ordered by their encoded form, so
// comparing two identifiers of the same kind with Compare (or ==) follows
// canonical book/chapter/verse order. A finer identifier can be reduced to
// a coarser one with the Book, Chapter, and Verse methods.
package bcv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mwatts/biblelib/core/books"
	"github.com/mwatts/biblelib/core/errors"
)

// Ref is implemented by all canonical identifier kinds.
type Ref interface {
	// String returns the encoded identifier.
	String() string

	// BookID returns the 2-character USFM book number.
	BookID() string

	// plain returns the digits without canon prefix or part, for
	// prefix-based containment checks.
	plain() string
}

// BID identifies a book ("41" is Mark).
type BID struct {
	id string
}

// NewBID validates and returns a book identifier.
func NewBID(id string) (BID, error) {
	if err := checkDigits(id, 2, "book"); err != nil {
		return BID{}, err
	}
	return BID{id: id}, nil
}

func (b BID) String() string { return b.id }

// BookID returns the USFM book number.
func (b BID) BookID() string { return b.id }

func (b BID) plain() string { return b.id }

// Compare returns -1, 0, or 1 ordering b against other canonically.
func (b BID) Compare(other BID) int { return strings.Compare(b.id, other.id) }

// Includes reports whether other falls within this book. Any identifier
// includes itself.
func (b BID) Includes(other Ref) bool {
	return strings.HasPrefix(other.plain(), b.id)
}

// AtChapter builds the chapter identifier for 1-based chapter n within
// this book.
func (b BID) AtChapter(n int) BCID {
	return BCID{id: b.id + Pad3(n)}
}

// ToUSFM renders the identifier as a USFM book name.
func (b BID) ToUSFM() (string, error) {
	book, err := books.FromUSFMNumber(b.id)
	if err != nil {
		return "", err
	}
	return book.USFMName, nil
}

// BCID identifies a book and chapter ("41004" is Mark 4).
type BCID struct {
	id string
}

// NewBCID validates and returns a book+chapter identifier.
func NewBCID(id string) (BCID, error) {
	if err := checkDigits(id, 5, "chapter"); err != nil {
		return BCID{}, err
	}
	return BCID{id: id}, nil
}

// MakeBCID builds a chapter identifier from a USFM book number and a
// 1-based chapter number.
func MakeBCID(book string, chapter int) (BCID, error) {
	return NewBCID(book + Pad3(chapter))
}

func (c BCID) String() string { return c.id }

// BookID returns the USFM book number.
func (c BCID) BookID() string { return c.id[:2] }

// ChapterID returns the zero-padded chapter component.
func (c BCID) ChapterID() string { return c.id[2:5] }

// ChapterNum returns the chapter number as an integer.
func (c BCID) ChapterNum() int { return mustInt(c.ChapterID()) }

func (c BCID) plain() string { return c.id }

// Compare returns -1, 0, or 1 ordering c against other canonically.
func (c BCID) Compare(other BCID) int { return strings.Compare(c.id, other.id) }

// Book returns the containing book identifier.
func (c BCID) Book() BID { return BID{id: c.id[:2]} }

// AtVerse builds the verse identifier for 1-based verse n within this
// chapter.
func (c BCID) AtVerse(n int) BCVID {
	return BCVID{id: c.id + Pad3(n)}
}

// Includes reports whether other falls within this chapter.
func (c BCID) Includes(other Ref) bool {
	return strings.HasPrefix(other.plain(), c.id)
}

// ToUSFM renders the identifier like "MRK 4".
func (c BCID) ToUSFM() (string, error) {
	book, err := books.FromUSFMNumber(c.BookID())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %d", book.USFMName, c.ChapterNum()), nil
}

// BCVID identifies a book, chapter, and verse ("41004003" is Mark 4:3).
type BCVID struct {
	id string
}

// NewBCVID validates and returns a book+chapter+verse identifier.
func NewBCVID(id string) (BCVID, error) {
	if err := checkDigits(id, 8, "verse"); err != nil {
		return BCVID{}, err
	}
	return BCVID{id: id}, nil
}

// MakeBCVID builds a verse identifier from a USFM book number and 1-based
// chapter and verse numbers.
func MakeBCVID(book string, chapter, verse int) (BCVID, error) {
	return NewBCVID(book + Pad3(chapter) + Pad3(verse))
}

func (v BCVID) String() string { return v.id }

// BookID returns the USFM book number.
func (v BCVID) BookID() string { return v.id[:2] }

// ChapterID returns the zero-padded chapter component.
func (v BCVID) ChapterID() string { return v.id[2:5] }

// ChapterNum returns the chapter number as an integer.
func (v BCVID) ChapterNum() int { return mustInt(v.ChapterID()) }

// VerseID returns the zero-padded verse component.
func (v BCVID) VerseID() string { return v.id[5:8] }

// VerseNum returns the verse number as an integer.
func (v BCVID) VerseNum() int { return mustInt(v.VerseID()) }

func (v BCVID) plain() string { return v.id }

// Compare returns -1, 0, or 1 ordering v against other canonically.
func (v BCVID) Compare(other BCVID) int { return strings.Compare(v.id, other.id) }

// Book returns the containing book identifier.
func (v BCVID) Book() BID { return BID{id: v.id[:2]} }

// Chapter returns the containing chapter identifier.
func (v BCVID) Chapter() BCID { return BCID{id: v.id[:5]} }

// Includes reports whether other falls within this verse.
func (v BCVID) Includes(other Ref) bool {
	return strings.HasPrefix(other.plain(), v.id)
}

// ToUSFM renders the identifier like "MRK 4:3".
func (v BCVID) ToUSFM() (string, error) {
	book, err := books.FromUSFMNumber(v.BookID())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %d:%d", book.USFMName, v.ChapterNum(), v.VerseNum()), nil
}

// BCVWPID identifies a single word token, optionally with a word part.
//
// The encoded form always carries the canon prefix and a part digit
// ("n410040030011"). Input may omit either: a missing prefix is derived
// from the book number, and a missing part defaults to "1" (the NT
// convention, where texts are not subdivided below the word).
type BCVWPID struct {
	id string // normalized: prefix + 11 digits + part
}

// NewBCVWPID validates and returns a word identifier, normalizing the
// canon prefix and part.
func NewBCVWPID(id string) (BCVWPID, error) {
	prefix := ""
	rest := id
	if len(id) > 0 && (id[0] == 'o' || id[0] == 'n') {
		prefix = id[:1]
		rest = id[1:]
	}
	if len(rest) != 11 && len(rest) != 12 {
		return BCVWPID{}, errors.NewValidation("id", fmt.Sprintf("invalid word identifier %q: want 11 or 12 digits", id))
	}
	if !allDigits(rest) {
		return BCVWPID{}, errors.NewValidation("id", fmt.Sprintf("invalid word identifier %q: non-digit characters", id))
	}
	derived := canonPrefix(rest[:2])
	if prefix == "" {
		prefix = derived
	} else if prefix != derived {
		return BCVWPID{}, errors.NewValidation("id", fmt.Sprintf("canon prefix %q does not match book %q", prefix, rest[:2]))
	}
	if len(rest) == 11 {
		rest += "1"
	}
	return BCVWPID{id: prefix + rest}, nil
}

// canonPrefix returns "o" for OT books, "n" for NT, and "x" for anything
// outside the 66-book numbering.
func canonPrefix(bookID string) string {
	switch {
	case bookID < "40":
		return "o"
	case bookID < "67":
		return "n"
	default:
		return "x"
	}
}

func (w BCVWPID) String() string { return w.id }

// CanonPrefix returns the canon prefix ("o" or "n").
func (w BCVWPID) CanonPrefix() string { return w.id[:1] }

// BookID returns the USFM book number.
func (w BCVWPID) BookID() string { return w.id[1:3] }

// ChapterID returns the zero-padded chapter component.
func (w BCVWPID) ChapterID() string { return w.id[3:6] }

// VerseID returns the zero-padded verse component.
func (w BCVWPID) VerseID() string { return w.id[6:9] }

// WordID returns the zero-padded word component.
func (w BCVWPID) WordID() string { return w.id[9:12] }

// PartID returns the single-character part component.
func (w BCVWPID) PartID() string { return w.id[12:] }

func (w BCVWPID) plain() string { return w.id[1:12] }

// Compare returns -1, 0, or 1 ordering w against other by encoded form.
// Note the canon prefix participates, matching the encoding's sort order.
func (w BCVWPID) Compare(other BCVWPID) int { return strings.Compare(w.id, other.id) }

// Book returns the containing book identifier.
func (w BCVWPID) Book() BID { return BID{id: w.id[1:3]} }

// Chapter returns the containing chapter identifier.
func (w BCVWPID) Chapter() BCID { return BCID{id: w.id[1:6]} }

// Verse returns the containing verse identifier.
func (w BCVWPID) Verse() BCVID { return BCVID{id: w.id[1:9]} }

// Includes reports whether other is the same word. Word identifiers only
// include themselves.
func (w BCVWPID) Includes(other Ref) bool {
	o, ok := other.(BCVWPID)
	return ok && o.id == w.id
}

// GetID renders the identifier with optional canon prefix and, for NT
// tokens, an optional part digit. Hebrew tokens always carry their part.
func (w BCVWPID) GetID(prefix, ntPart bool) string {
	s := w.id
	if !prefix {
		s = s[1:]
	}
	if w.CanonPrefix() == "n" && !ntPart {
		s = s[:len(s)-1]
	}
	return s
}

// ToUSFM renders the enclosing verse like "MRK 4:3".
func (w BCVWPID) ToUSFM() (string, error) {
	return w.Verse().ToUSFM()
}

// Simplify reduces ref to a coarser granularity named by to: "BID",
// "BCID", or "BCVID". Returns an error when ref does not carry enough
// digits for the requested level.
func Simplify(ref Ref, to string) (Ref, error) {
	switch to {
	case "BID":
		switch r := ref.(type) {
		case BCID:
			return r.Book(), nil
		case BCVID:
			return r.Book(), nil
		case BCVWPID:
			return r.Book(), nil
		}
	case "BCID":
		switch r := ref.(type) {
		case BCVID:
			return r.Chapter(), nil
		case BCVWPID:
			return r.Chapter(), nil
		}
	case "BCVID":
		if r, ok := ref.(BCVWPID); ok {
			return r.Verse(), nil
		}
	}
	return nil, errors.NewValidation("to", fmt.Sprintf("cannot simplify %q to %s", ref.String(), to))
}

// Pad3 returns n zero-padded to three digits.
func Pad3(n int) string {
	return fmt.Sprintf("%03d", n)
}

// pad3String zero-pads a numeric string to three digits. The verse string
// "title" encodes as "000": chapter headings sort before verse 1.
func pad3String(s string) (string, error) {
	if s == "title" {
		return "000", nil
	}
	if len(s) > 3 {
		return "", errors.NewValidation("number", fmt.Sprintf("%q is longer than 3 digits", s))
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return "", errors.NewValidation("number", fmt.Sprintf("%q is not numeric", s))
	}
	return Pad3(n), nil
}

func checkDigits(id string, width int, kind string) error {
	if len(id) != width {
		return errors.NewValidation("id", fmt.Sprintf("invalid %s identifier %q: want %d characters", kind, id, width))
	}
	if !allDigits(id) {
		return errors.NewValidation("id", fmt.Sprintf("invalid %s identifier %q: non-digit characters", kind, id))
	}
	return nil
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func mustInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		// components are validated digits at construction
		panic(fmt.Sprintf("bcv: malformed component %q: %v", s, err))
	}
	return n
}
