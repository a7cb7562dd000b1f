package unit

import (
	"errors"
	"testing"

	"github.com/mwatts/biblelib/core/bcv"

	liberrors "github.com/mwatts/biblelib/core/errors"
)

func TestNewChapter(t *testing.T) {
	c, err := NewChapter(mustBCID(t, "41001"))
	if err != nil {
		t.Fatalf("NewChapter failed: %v", err)
	}
	if got := c.LastVerse(); got != 45 {
		t.Errorf("Mark 1 LastVerse() = %d, want 45", got)
	}

	_, err = NewChapter(mustBCID(t, "41017"))
	var nfe *liberrors.NotFoundError
	if !errors.As(err, &nfe) {
		t.Errorf("Mark 17: error = %v, want *NotFoundError", err)
	}
	_, err = NewChapter(mustBCID(t, "67001"))
	if !errors.As(err, &nfe) {
		t.Errorf("book 67: error = %v, want *NotFoundError", err)
	}
}

func TestChapterEnumerate(t *testing.T) {
	c, err := NewChapter(mustBCID(t, "41004"))
	if err != nil {
		t.Fatalf("NewChapter failed: %v", err)
	}

	got, err := c.Enumerate(3, 5)
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	want := []string{"41004003", "41004004", "41004005"}
	if len(got) != len(want) {
		t.Fatalf("Enumerate() returned %d ids, want %d", len(got), len(want))
	}
	for i, id := range got {
		if id.String() != want[i] {
			t.Errorf("Enumerate()[%d] = %q, want %q", i, id.String(), want[i])
		}
	}

	// inclusive of the end verse
	full, err := c.Enumerate(1, c.LastVerse())
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	if len(full) != c.LastVerse() {
		t.Errorf("full chapter has %d verses, want %d", len(full), c.LastVerse())
	}
}

func TestChapterEnumerateBounds(t *testing.T) {
	c, err := NewChapter(mustBCID(t, "41004"))
	if err != nil {
		t.Fatalf("NewChapter failed: %v", err)
	}

	tests := []struct {
		name  string
		start int
		end   int
	}{
		{"start below one", 0, 5},
		{"end past last verse", 1, 42}, // Mark 4 has 41 verses
		{"start after end", 5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Enumerate(tt.start, tt.end); err == nil {
				t.Errorf("Enumerate(%d, %d) succeeded, want error", tt.start, tt.end)
			}
		})
	}
}

func TestChapterCount(t *testing.T) {
	tests := []struct {
		book string
		want int
	}{
		{"41", 16},  // Mark
		{"43", 21},  // John
		{"19", 150}, // Psalms
		{"57", 1},   // Philemon
	}
	for _, tt := range tests {
		book, _ := bcv.NewBID(tt.book)
		got, err := ChapterCount(book)
		if err != nil {
			t.Fatalf("ChapterCount(%s) failed: %v", tt.book, err)
		}
		if got != tt.want {
			t.Errorf("ChapterCount(%s) = %d, want %d", tt.book, got, tt.want)
		}
	}

	book, _ := bcv.NewBID("67")
	if _, err := ChapterCount(book); err == nil {
		t.Error("expected error for book outside canon")
	}
}

func TestLastVerse(t *testing.T) {
	tests := []struct {
		chapter string
		want    int
	}{
		{"41001", 45},  // Mark 1
		{"43001", 51},  // John 1
		{"19119", 176}, // Psalm 119
		{"01001", 31},  // Genesis 1
	}
	for _, tt := range tests {
		got, err := LastVerse(mustBCID(t, tt.chapter))
		if err != nil {
			t.Fatalf("LastVerse(%s) failed: %v", tt.chapter, err)
		}
		if got != tt.want {
			t.Errorf("LastVerse(%s) = %d, want %d", tt.chapter, got, tt.want)
		}
	}

	if _, err := LastVerse(mustBCID(t, "41017")); err == nil {
		t.Error("expected error for chapter outside book")
	}
}
