package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("a\nb\n\n\n"))
	var out bytes.Buffer
	got, err := GetMultiline(in, "Enter text", &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetPassword_Stubbed(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword(&out)
	if err != nil || got != "s3cret" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Fatalf("prompt missing: %q", out.String())
	}
}
