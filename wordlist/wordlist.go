// Package wordlist reads the word lists consumed by the wordrect and
// wordsearch encoders.
//
// Format: plain text, whitespace-separated words; any line containing
// '#' is a comment and is skipped entirely. Words are lowercased and
// stripped of everything outside 'a'..'z', so dictionary files with
// punctuation or casing quirks still load cleanly.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read scans r and returns the cleaned words in file order.
func Read(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.ContainsRune(line, '#') {
			continue
		}
		for _, field := range strings.Fields(line) {
			if w := clean(field); w != "" {
				words = append(words, w)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read failed: %w", err)
	}

	return words, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// OfLength filters words to exactly n letters, keeping file order and
// stopping after limit words; limit ≤ 0 means no cap.
func OfLength(words []string, n, limit int) []string {
	var out []string
	for _, w := range words {
		if len(w) != n {
			continue
		}
		out = append(out, w)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out
}

// Letters returns the distinct letters of w in first-appearance order.
func Letters(w string) string {
	var b strings.Builder
	for i := 0; i < len(w); i++ {
		if !strings.ContainsRune(b.String(), rune(w[i])) {
			b.WriteByte(w[i])
		}
	}

	return b.String()
}

// clean lowercases w and drops everything outside 'a'..'z'.
func clean(w string) string {
	var b strings.Builder
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c >= 'a' && c <= 'z' {
			b.WriteByte(c)
		}
	}

	return b.String()
}
