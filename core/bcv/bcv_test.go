package bcv

import (
	"testing"
)

func TestNewBID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"41", false},
		{"01", false},
		{"66", false},
		{"4", true},
		{"410", true},
		{"4a", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			b, err := NewBID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err == nil && b.String() != tt.id {
				t.Errorf("String() = %q, want %q", b.String(), tt.id)
			}
		})
	}
}

func TestBCIDAccessors(t *testing.T) {
	c, err := NewBCID("41004")
	if err != nil {
		t.Fatalf("NewBCID failed: %v", err)
	}
	if got := c.BookID(); got != "41" {
		t.Errorf("BookID() = %q, want %q", got, "41")
	}
	if got := c.ChapterID(); got != "004" {
		t.Errorf("ChapterID() = %q, want %q", got, "004")
	}
	if got := c.ChapterNum(); got != 4 {
		t.Errorf("ChapterNum() = %d, want 4", got)
	}
	if got := c.Book().String(); got != "41" {
		t.Errorf("Book() = %q, want %q", got, "41")
	}
}

func TestBCVIDAccessors(t *testing.T) {
	v, err := NewBCVID("41004003")
	if err != nil {
		t.Fatalf("NewBCVID failed: %v", err)
	}
	if got := v.BookID(); got != "41" {
		t.Errorf("BookID() = %q, want %q", got, "41")
	}
	if got := v.ChapterNum(); got != 4 {
		t.Errorf("ChapterNum() = %d, want 4", got)
	}
	if got := v.VerseNum(); got != 3 {
		t.Errorf("VerseNum() = %d, want 3", got)
	}
	if got := v.Chapter().String(); got != "41004" {
		t.Errorf("Chapter() = %q, want %q", got, "41004")
	}
	if got := v.Book().String(); got != "41" {
		t.Errorf("Book() = %q, want %q", got, "41")
	}
	if v.Chapter().Book() != v.Book() {
		t.Error("reducing via the chapter should reach the same book")
	}
}

func TestCompareOrdering(t *testing.T) {
	// identifiers sort lexically, which matches canonical order
	a, _ := NewBCVID("41004003")
	b, _ := NewBCVID("41004004")
	c, _ := NewBCVID("41005001")
	if a.Compare(b) >= 0 {
		t.Errorf("41004003 should precede 41004004")
	}
	if b.Compare(c) >= 0 {
		t.Errorf("41004004 should precede 41005001")
	}
	if a.Compare(a) != 0 {
		t.Errorf("identifier should equal itself")
	}
}

func TestIncludes(t *testing.T) {
	book, _ := NewBID("41")
	chapter, _ := NewBCID("41004")
	verse, _ := NewBCVID("41004003")
	otherChapter, _ := NewBCID("41005")
	word, _ := NewBCVWPID("n410040030011")

	tests := []struct {
		name  string
		outer Ref
		inner Ref
		want  bool
	}{
		{"book includes chapter", book, chapter, true},
		{"book includes verse", book, verse, true},
		{"book includes word", book, word, true},
		{"chapter includes verse", chapter, verse, true},
		{"chapter includes word", chapter, word, true},
		{"chapter excludes sibling", chapter, otherChapter, false},
		{"verse includes word", verse, word, true},
		{"verse includes itself", verse, verse, true},
		{"chapter excludes book", chapter, book, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			switch outer := tt.outer.(type) {
			case BID:
				got = outer.Includes(tt.inner)
			case BCID:
				got = outer.Includes(tt.inner)
			case BCVID:
				got = outer.Includes(tt.inner)
			case BCVWPID:
				got = outer.Includes(tt.inner)
			}
			if got != tt.want {
				t.Errorf("Includes(%s in %s) = %v, want %v", tt.inner, tt.outer, got, tt.want)
			}
		})
	}
}

func TestBuilders(t *testing.T) {
	book, _ := NewBID("41")
	c := book.AtChapter(4)
	if c.String() != "41004" {
		t.Errorf("AtChapter(4) = %q, want %q", c.String(), "41004")
	}
	v := c.AtVerse(3)
	if v.String() != "41004003" {
		t.Errorf("AtVerse(3) = %q, want %q", v.String(), "41004003")
	}

	mc, err := MakeBCID("41", 4)
	if err != nil {
		t.Fatalf("MakeBCID failed: %v", err)
	}
	if mc != c {
		t.Errorf("MakeBCID = %q, want %q", mc.String(), c.String())
	}
	mv, err := MakeBCVID("41", 4, 3)
	if err != nil {
		t.Fatalf("MakeBCVID failed: %v", err)
	}
	if mv != v {
		t.Errorf("MakeBCVID = %q, want %q", mv.String(), v.String())
	}
}

func TestNewBCVWPID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{"bare NT id gets prefix and part", "41004003001", "n410040030011", false},
		{"bare id with part", "410040030012", "n410040030012", false},
		{"prefixed id kept", "n410040030011", "n410040030011", false},
		{"OT id gets o prefix", "01002003001", "o010020030011", false},
		{"wrong prefix rejected", "o410040030011", "", true},
		{"too short", "4100400300", "", true},
		{"non-digits", "41004003ABC", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewBCVWPID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBCVWPID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err == nil && w.String() != tt.want {
				t.Errorf("String() = %q, want %q", w.String(), tt.want)
			}
		})
	}
}

func TestBCVWPIDAccessors(t *testing.T) {
	w, err := NewBCVWPID("n410040030011")
	if err != nil {
		t.Fatalf("NewBCVWPID failed: %v", err)
	}
	if got := w.CanonPrefix(); got != "n" {
		t.Errorf("CanonPrefix() = %q, want %q", got, "n")
	}
	if got := w.BookID(); got != "41" {
		t.Errorf("BookID() = %q, want %q", got, "41")
	}
	if got := w.WordID(); got != "003" {
		t.Errorf("WordID() = %q, want %q", got, "003")
	}
	if got := w.PartID(); got != "1" {
		t.Errorf("PartID() = %q, want %q", got, "1")
	}
	if got := w.Verse().String(); got != "41004003" {
		t.Errorf("Verse() = %q, want %q", got, "41004003")
	}
}

func TestBCVWPIDGetID(t *testing.T) {
	w, _ := NewBCVWPID("n410040030011")
	tests := []struct {
		name   string
		prefix bool
		ntPart bool
		want   string
	}{
		{"full", true, true, "n410040030011"},
		{"no prefix", false, true, "410040030011"},
		{"no part", true, false, "n41004003001"},
		{"neither", false, false, "41004003001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.GetID(tt.prefix, tt.ntPart); got != tt.want {
				t.Errorf("GetID(%v, %v) = %q, want %q", tt.prefix, tt.ntPart, got, tt.want)
			}
		})
	}
}

func TestSimplify(t *testing.T) {
	chapter, _ := NewBCID("41004")
	verse, _ := NewBCVID("41004003")
	word, _ := NewBCVWPID("n410040030011")

	tests := []struct {
		name    string
		ref     Ref
		to      string
		want    string
		wantErr bool
	}{
		{"chapter to book", chapter, "BID", "41", false},
		{"verse to book", verse, "BID", "41", false},
		{"verse to chapter", verse, "BCID", "41004", false},
		{"word to verse", word, "BCVID", "41004003", false},
		{"word to chapter", word, "BCID", "41004", false},
		{"word to book", word, "BID", "41", false},
		{"chapter to verse fails", chapter, "BCVID", "", true},
		{"unknown target fails", verse, "BCVWPID", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Simplify(tt.ref, tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Simplify error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got.String() != tt.want {
				t.Errorf("Simplify = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestToUSFM(t *testing.T) {
	book, _ := NewBID("41")
	chapter, _ := NewBCID("41004")
	verse, _ := NewBCVID("41004003")
	word, _ := NewBCVWPID("n410040030011")

	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"book", book.ToUSFM, "MRK"},
		{"chapter", chapter.ToUSFM, "MRK 4"},
		{"verse", verse.ToUSFM, "MRK 4:3"},
		{"word renders its verse", word.ToUSFM, "MRK 4:3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			if err != nil {
				t.Fatalf("ToUSFM failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToUSFM() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPad3(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "000"},
		{3, "003"},
		{40, "040"},
		{119, "119"},
	}
	for _, tt := range tests {
		if got := Pad3(tt.n); got != tt.want {
			t.Errorf("Pad3(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestPad3String(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"3", "003", false},
		{"40", "040", false},
		{"title", "000", false},
		{"1234", "", true},
		{"x", "", true},
	}
	for _, tt := range tests {
		got, err := pad3String(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("pad3String(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("pad3String(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
