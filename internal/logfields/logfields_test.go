package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Path", KeyPath, "/tmp/in.docx", Path("/tmp/in.docx")},
		{"Output", KeyOutput, "/tmp/out.docx", Output("/tmp/out.docx")},
		{"Stage", KeyStage, "unpack", Stage("unpack")},
		{"Transform", KeyTransform, "strip_comments", Transform("strip_comments")},
		{"Part", KeyPart, "word/comments.xml", Part("word/comments.xml")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.attr.Key != c.attrKey {
				t.Fatalf("key mismatch: got %s want %s", c.attr.Key, c.attrKey)
			}
			if c.attr.Value.String() != c.attrVal {
				t.Fatalf("value mismatch: got %s want %s", c.attr.Value.String(), c.attrVal)
			}
		})
	}
}

func TestNumericHelpers(t *testing.T) {
	if a := Count(4); a.Key != KeyCount || a.Value.Int64() != 4 {
		t.Fatalf("Count attr wrong: %v", a)
	}
	if a := Entries(2); a.Key != KeyEntries || a.Value.Int64() != 2 {
		t.Fatalf("Entries attr wrong: %v", a)
	}
	if a := DurationMS(1.5); a.Key != KeyDurationMS || a.Value.Float64() != 1.5 {
		t.Fatalf("DurationMS attr wrong: %v", a)
	}
}

func TestErrorHelper(t *testing.T) {
	if a := Error(nil); a.Value.String() != "" {
		t.Fatalf("nil error should produce empty value, got %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Key != KeyError || a.Value.String() != "boom" {
		t.Fatalf("unexpected error attr: %v", a)
	}
}
