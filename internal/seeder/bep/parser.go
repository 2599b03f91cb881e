// Package bep parses the Bilingual Emacspeak Project English-katakana
// dictionary ("WORD カタカナ" per line).
package bep

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/heartmarshall/transkana/internal/domain"
	"github.com/heartmarshall/transkana/internal/script"
)

// ParseResult holds the parsed dictionary.
type ParseResult struct {
	Readings map[string]string
	Stats    Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	Malformed    int
	NotKatakana  int
	UniqueWords  int
}

// Parse reads a BEP dictionary file.
func Parse(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ParseReader(f)
}

// ParseReader parses dictionary lines from r. Lines whose reading is not
// entirely katakana are dropped. A later line for the same word wins.
func ParseReader(r io.Reader) (ParseResult, error) {
	result := ParseResult{Readings: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		result.Stats.TotalLines++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			result.Stats.CommentLines++
			continue
		}

		word, reading, ok := strings.Cut(line, " ")
		word = domain.NormalizeSurface(word)
		reading = strings.TrimSpace(reading)
		if !ok || word == "" || reading == "" {
			result.Stats.Malformed++
			continue
		}
		if !isKatakana(reading) {
			result.Stats.NotKatakana++
			continue
		}

		result.Readings[word] = reading
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	result.Stats.UniqueWords = len(result.Readings)
	return result, nil
}

// ToDomainWords converts parsed readings to words carrying the BEP reading.
func (r ParseResult) ToDomainWords() []domain.Word {
	words := make([]domain.Word, 0, len(r.Readings))
	for surface, kana := range r.Readings {
		words = append(words, domain.Word{Surface: surface, BEPReading: kana})
	}
	return words
}

func isKatakana(s string) bool {
	for _, r := range s {
		if !script.IsKatakana(r) {
			return false
		}
	}
	return true
}
