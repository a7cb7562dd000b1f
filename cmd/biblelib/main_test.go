package main

import (
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		id      string
		want    string
		wantErr bool
	}{
		{"41", "41", false},
		{"41004", "41004", false},
		{"41004003", "41004003", false},
		{"41004003001", "n410040030011", false},
		{"n410040030011", "n410040030011", false},
		{"410", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			ref, err := parseID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err == nil && ref.String() != tt.want {
				t.Errorf("parseID(%q) = %q, want %q", tt.id, ref.String(), tt.want)
			}
		})
	}
}

func TestResolveBook(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mark", "MRK"},
		{"MRK", "MRK"},
		{"1Cor", "1CO"},
		{"Song of Solomon", "SNG"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b, err := resolveBook(tt.in)
			if err != nil {
				t.Fatalf("resolveBook(%q) failed: %v", tt.in, err)
			}
			if b.USFMName != tt.want {
				t.Errorf("USFMName = %q, want %q", b.USFMName, tt.want)
			}
		})
	}
	if _, err := resolveBook("Nonesuch"); err == nil {
		t.Error("expected error for unknown book")
	}
}
