package books

import (
	"testing"
)

func TestCanonShape(t *testing.T) {
	all := All()
	if len(all) != 66 {
		t.Fatalf("canon has %d books, want 66", len(all))
	}
	if all[0].USFMName != "GEN" {
		t.Errorf("first book = %q, want GEN", all[0].USFMName)
	}
	if all[65].USFMName != "REV" {
		t.Errorf("last book = %q, want REV", all[65].USFMName)
	}
	for i, b := range all {
		if b.Ordinal != i {
			t.Errorf("%s: Ordinal = %d, want %d", b.USFMName, b.Ordinal, i)
		}
	}
}

func TestByUSFMName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"MRK", "41", false},
		{"mrk", "41", false},
		{"GEN", "01", false},
		{"REV", "66", false},
		{"XXX", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ByUSFMName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ByUSFMName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err == nil && b.USFMNumber != tt.want {
				t.Errorf("USFMNumber = %q, want %q", b.USFMNumber, tt.want)
			}
		})
	}
}

func TestFromUSFMNumber(t *testing.T) {
	b, err := FromUSFMNumber("41")
	if err != nil {
		t.Fatalf("FromUSFMNumber failed: %v", err)
	}
	if b.Name != "Mark" {
		t.Errorf("Name = %q, want Mark", b.Name)
	}
	if _, err := FromUSFMNumber("67"); err == nil {
		t.Error("expected error for number outside canon")
	}
}

func TestFromOSIS(t *testing.T) {
	tests := []struct {
		osis    string
		want    string
		wantErr bool
	}{
		{"Mark", "MRK", false},
		{"1Cor", "1CO", false},
		{"Song", "SNG", false},
		{"Rev", "REV", false},
		{"mark", "", true}, // OSIS ids are case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.osis, func(t *testing.T) {
			b, err := FromOSIS(tt.osis)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromOSIS(%q) error = %v, wantErr %v", tt.osis, err, tt.wantErr)
			}
			if err == nil && b.USFMName != tt.want {
				t.Errorf("USFMName = %q, want %q", b.USFMName, tt.want)
			}
		})
	}
}

func TestFromLogos(t *testing.T) {
	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{"62", "MRK", false},
		{"bible.62", "MRK", false},
		{"1", "GEN", false},
		{"87", "REV", false},
		{"40", "", true}, // 40-60 are unassigned (deuterocanon slots)
		{"bible.x", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			b, err := FromLogos(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromLogos(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if err == nil && b.USFMName != tt.want {
				t.Errorf("USFMName = %q, want %q", b.USFMName, tt.want)
			}
		})
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"Mark", "MRK", false},
		{"mark", "MRK", false},
		{"1 Corinthians", "1CO", false},
		{"Song of Songs", "SNG", false},
		{"Song of Solomon", "SNG", false}, // alternate name
		{"Qoheleth", "ECC", false},
		{"Psalter", "PSA", false},
		{"Middlemarch", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err == nil && b.USFMName != tt.want {
				t.Errorf("USFMName = %q, want %q", b.USFMName, tt.want)
			}
		})
	}
}

func TestUSFMNumberAlt(t *testing.T) {
	mark, _ := ByUSFMName("MRK")
	if got := mark.USFMNumberAlt(); got != "42" {
		t.Errorf("Mark alt number = %q, want 42", got)
	}
	gen, _ := ByUSFMName("GEN")
	if got := gen.USFMNumberAlt(); got != "01" {
		t.Errorf("Genesis alt number = %q, want 01", got)
	}
}

func TestLogosURI(t *testing.T) {
	mark, _ := ByUSFMName("MRK")
	want := "https://ref.ly/logosref/bible.62"
	if got := mark.LogosURI(); got != want {
		t.Errorf("LogosURI = %q, want %q", got, want)
	}
}

func TestCompare(t *testing.T) {
	mark, _ := ByUSFMName("MRK")
	john, _ := ByUSFMName("JHN")
	if mark.Compare(john) >= 0 {
		t.Error("Mark should precede John")
	}
	if john.Compare(mark) <= 0 {
		t.Error("John should follow Mark")
	}
	if mark.Compare(mark) != 0 {
		t.Error("book should equal itself")
	}
}
