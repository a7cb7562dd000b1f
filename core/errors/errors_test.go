package errors

import (
	stderrors "errors"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidation("endid", "start and end must be in the same book")
	want := "validation failed for endid: start and end must be in the same book"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !stderrors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should unwrap to ErrInvalidInput")
	}
}

func TestValidationErrorWrapsSentinel(t *testing.T) {
	cause := stderrors.New("start follows end")
	err := &ValidationError{Field: "startid", Message: "bad order", Err: cause}
	if !stderrors.Is(err, cause) {
		t.Error("ValidationError should unwrap to its cause")
	}
	var verr *ValidationError
	if !stderrors.As(err, &verr) {
		t.Error("errors.As should find *ValidationError")
	}
	if verr.Field != "startid" {
		t.Errorf("Field = %q, want startid", verr.Field)
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("book", "67")
	if got, want := err.Error(), "book not found: 67"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should unwrap to ErrNotFound")
	}

	bare := NewNotFound("mapping", "")
	if got, want := bare.Error(), "mapping not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseError(t *testing.T) {
	err := NewParse("TSV", "mappings.tsv", "missing column NA28_ID")
	if got, want := err.Error(), "failed to parse TSV at mappings.tsv: missing column NA28_ID"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, ErrInvalidInput) {
		t.Error("ParseError should unwrap to ErrInvalidInput")
	}
}

func TestIOError(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := NewIO("open", "/tmp/x", cause)
	if !stderrors.Is(err, cause) {
		t.Error("IOError should unwrap to its cause")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	cause := stderrors.New("boom")
	err := Wrap(cause, "loading mappings")
	if got, want := err.Error(), "loading mappings: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause")
	}

	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}
	err = Wrapf(cause, "row %d", 7)
	if got, want := err.Error(), "row 7: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
