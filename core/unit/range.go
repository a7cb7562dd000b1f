package unit

import (
	stderrors "errors"
	"fmt"

	"github.com/mwatts/biblelib/core/bcv"
	"github.com/mwatts/biblelib/core/errors"
)

// Sentinel errors distinguishing the two range-validation failures.
// Constructors wrap them in a ValidationError, so callers can branch with
// errors.Is without parsing message text.
var (
	// ErrCrossBook indicates the start and end identifiers belong to
	// different books.
	ErrCrossBook = stderrors.New("start and end are in different books")

	// ErrOutOfOrder indicates the start identifier canonically follows
	// the end identifier.
	ErrOutOfOrder = stderrors.New("start follows end")
)

// ChapterRange is an inclusive range of chapters within one book.
//
// Invariants are checked once at construction: both identifiers reduce to
// the same book, and start does not follow end. A vacuous range (equal
// start and end) is permitted and enumerates to that single chapter.
type ChapterRange struct {
	startID bcv.BCID
	endID   bcv.BCID
}

// NewChapterRange validates and returns the chapter range [start, end].
func NewChapterRange(start, end bcv.BCID) (ChapterRange, error) {
	if start.Book() != end.Book() {
		return ChapterRange{}, &errors.ValidationError{
			Field:   "endid",
			Message: fmt.Sprintf("start %s and end %s must be in the same book", start, end),
			Err:     ErrCrossBook,
		}
	}
	if start.Compare(end) > 0 {
		return ChapterRange{}, &errors.ValidationError{
			Field:   "startid",
			Message: fmt.Sprintf("start %s must equal or precede end %s", start, end),
			Err:     ErrOutOfOrder,
		}
	}
	return ChapterRange{startID: start, endID: end}, nil
}

// Start returns the first chapter identifier of the range.
func (r ChapterRange) Start() bcv.BCID { return r.startID }

// End returns the last chapter identifier of the range.
func (r ChapterRange) End() bcv.BCID { return r.endID }

// Enumerate returns the chapter identifiers of the range in ascending
// order, including both endpoints (unlike a half-open range).
//
// Chapters within a book are assumed to be numbered sequentially with no
// gaps. That holds for the Protestant canon this library covers; other
// chapter/verse divisions can violate it, and this enumeration does not
// detect that.
func (r ChapterRange) Enumerate() []bcv.BCID {
	if r.startID == r.endID {
		// vacuous range
		return []bcv.BCID{r.startID}
	}
	book := r.startID.Book()
	first, last := r.startID.ChapterNum(), r.endID.ChapterNum()
	out := make([]bcv.BCID, 0, last-first+1)
	for n := first; n <= last; n++ {
		out = append(out, book.AtChapter(n))
	}
	return out
}

// VerseRange is an inclusive range of verses within one book, possibly
// spanning multiple chapters.
//
// Validation happens once at construction; Enumerate is pure, performs no
// further validation, and cannot fail on a validly constructed range.
type VerseRange struct {
	startID bcv.BCVID
	endID   bcv.BCVID
	book    bcv.BID
	counts  []int // per-chapter verse counts for book
}

// NewVerseRange validates and returns the verse range [start, end]. Beyond
// the same-book and ordering invariants, the spanned chapters must exist
// in the canon tables so that enumeration has verse extents to work with;
// an unknown book or chapter fails with a NotFoundError.
func NewVerseRange(start, end bcv.BCVID) (VerseRange, error) {
	book := start.Book()
	if book != end.Book() {
		return VerseRange{}, &errors.ValidationError{
			Field:   "endid",
			Message: fmt.Sprintf("start %s and end %s must be in the same book", start, end),
			Err:     ErrCrossBook,
		}
	}
	// note this allows a vacuous range with the same start and end
	if start.Compare(end) > 0 {
		return VerseRange{}, &errors.ValidationError{
			Field:   "startid",
			Message: fmt.Sprintf("start %s must equal or precede end %s", start, end),
			Err:     ErrOutOfOrder,
		}
	}
	counts := verseCounts[book.BookID()]
	if counts == nil {
		return VerseRange{}, errors.NewNotFound("book", book.String())
	}
	if start.ChapterNum() < 1 || end.ChapterNum() > len(counts) {
		return VerseRange{}, errors.NewNotFound("chapter", end.Chapter().String())
	}
	return VerseRange{startID: start, endID: end, book: book, counts: counts}, nil
}

// Start returns the first verse identifier of the range.
func (r VerseRange) Start() bcv.BCVID { return r.startID }

// End returns the last verse identifier of the range.
func (r VerseRange) End() bcv.BCVID { return r.endID }

// Book returns the book both endpoints belong to.
func (r VerseRange) Book() bcv.BID { return r.book }

// Enumerate returns the verse identifiers of the range in ascending order,
// including both endpoints.
//
// A range within a single chapter enumerates directly. A range spanning
// chapters concatenates the tail of the first chapter, every verse of any
// fully spanned middle chapters, and the head of the last chapter. The
// same sequential-chapter-numbering assumption as ChapterRange.Enumerate
// applies.
func (r VerseRange) Enumerate() []bcv.BCVID {
	if r.startID == r.endID {
		// vacuous range
		return []bcv.BCVID{r.startID}
	}
	startChap, startVerse := r.startID.ChapterNum(), r.startID.VerseNum()
	endChap, endVerse := r.endID.ChapterNum(), r.endID.VerseNum()
	if startChap == endChap {
		return enumerateVerses(r.startID.Chapter(), startVerse, endVerse)
	}

	chapters, _ := NewChapterRange(r.startID.Chapter(), r.endID.Chapter())
	spanned := chapters.Enumerate()

	first := spanned[0]
	out := enumerateVerses(first, startVerse, r.counts[first.ChapterNum()-1])
	for _, mid := range spanned[1 : len(spanned)-1] {
		out = append(out, enumerateVerses(mid, 1, r.counts[mid.ChapterNum()-1])...)
	}
	last := spanned[len(spanned)-1]
	return append(out, enumerateVerses(last, 1, endVerse)...)
}
