package wordlist_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/exactcover/wordlist"
)

func TestRead_SkipsCommentsAndCleans(t *testing.T) {
	in := strings.NewReader("press\n# a comment line\nAbout cat's\n\nwith1digit\n")
	words, err := wordlist.Read(in)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"press", "about", "cats", "withdigit"}
	if len(words) != len(want) {
		t.Fatalf("got %v; want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("word %d = %q; want %q", i, words[i], want[i])
		}
	}
}

func TestOfLength(t *testing.T) {
	words := []string{"cat", "press", "dog", "ox", "rat", "cow"}
	got := wordlist.OfLength(words, 3, 2)
	if len(got) != 2 || got[0] != "cat" || got[1] != "dog" {
		t.Fatalf("OfLength = %v", got)
	}
	all := wordlist.OfLength(words, 3, 0)
	if len(all) != 4 {
		t.Fatalf("uncapped OfLength = %v", all)
	}
}

func TestLetters(t *testing.T) {
	if got := wordlist.Letters("press"); got != "pres" {
		t.Fatalf("Letters(press) = %q; want %q", got, "pres")
	}
}
