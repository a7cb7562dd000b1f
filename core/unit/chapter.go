// Package unit models units of scripture text (chapters and verses) and
// inclusive ranges over them. Units are identified by the canonical
// identifiers from core/bcv; verse boundaries come from the embedded
// Protestant versification tables.
package unit

import (
	"fmt"

	"github.com/mwatts/biblelib/core/bcv"
	"github.com/mwatts/biblelib/core/errors"
)

// Chapter is one chapter of a book. It knows its verse extent and can
// enumerate verse identifiers within itself.
type Chapter struct {
	id        bcv.BCID
	lastVerse int
}

// NewChapter returns the chapter identified by id. It fails with a
// NotFoundError when the book or chapter is outside the canon tables.
func NewChapter(id bcv.BCID) (*Chapter, error) {
	last := lastVerse(id.BookID(), id.ChapterNum())
	if last == 0 {
		return nil, errors.NewNotFound("chapter", id.String())
	}
	return &Chapter{id: id, lastVerse: last}, nil
}

// ID returns the chapter identifier.
func (c *Chapter) ID() bcv.BCID { return c.id }

// LastVerse returns the number of the final verse in this chapter.
func (c *Chapter) LastVerse() int { return c.lastVerse }

// Enumerate returns the verse identifiers for verse numbers start through
// end, inclusive. Unlike a conventional half-open range, the end verse is
// part of the result.
func (c *Chapter) Enumerate(start, end int) ([]bcv.BCVID, error) {
	if start < 1 || end > c.lastVerse {
		return nil, errors.NewValidation("verses",
			fmt.Sprintf("verses %d-%d outside chapter %s (1-%d)", start, end, c.id, c.lastVerse))
	}
	if end < start {
		return nil, errors.NewValidation("verses",
			fmt.Sprintf("start verse %d follows end verse %d", start, end))
	}
	return enumerateVerses(c.id, start, end), nil
}

// enumerateVerses builds the inclusive verse identifier sequence without
// bounds checks. Callers guarantee 1 <= start <= end.
func enumerateVerses(chapter bcv.BCID, start, end int) []bcv.BCVID {
	out := make([]bcv.BCVID, 0, end-start+1)
	for n := start; n <= end; n++ {
		out = append(out, chapter.AtVerse(n))
	}
	return out
}

// ChapterCount returns the number of chapters in a book. It fails with a
// NotFoundError when the book is outside the canon tables.
func ChapterCount(book bcv.BID) (int, error) {
	n := chapterCount(book.BookID())
	if n == 0 {
		return 0, errors.NewNotFound("book", book.String())
	}
	return n, nil
}

// LastVerse returns the last verse number of the chapter identified by id.
// It fails with a NotFoundError when the book or chapter is outside the
// canon tables.
func LastVerse(id bcv.BCID) (int, error) {
	last := lastVerse(id.BookID(), id.ChapterNum())
	if last == 0 {
		return 0, errors.NewNotFound("chapter", id.String())
	}
	return last, nil
}
