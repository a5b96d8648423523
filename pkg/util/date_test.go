package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-10-10")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, ok := ParseDate(""); ok {
		t.Fatalf("expected empty string to fail")
	}
	if _, ok := ParseDate("10/10/2024"); ok {
		t.Fatalf("expected non-ISO format to fail")
	}
}

func TestFormatDate(t *testing.T) {
	in := time.Date(2024, 10, 10, 15, 30, 0, 0, time.UTC)
	if got := FormatDate(in); got != "2024-10-10" {
		t.Fatalf("unexpected format %q", got)
	}
}

func TestParseUnixSeconds(t *testing.T) {
	want := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
	got, ok := ParseUnixSeconds("1728555010")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != want.Unix() {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}
