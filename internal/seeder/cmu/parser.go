// Package cmu parses CMU Pronouncing Dictionary files into katakana readings.
// Pure function: file path in, domain structs out. No database dependencies.
package cmu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/transkana/internal/domain"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

// ParseResult holds the parsed CMU dictionary data.
type ParseResult struct {
	Readings map[string]string // normalized word → katakana of the primary pronunciation
	Stats    Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines    int
	CommentLines  int
	ParsedLines   int
	VariantLines  int
	RejectedWords int
	UniqueWords   int
}

// Parse reads a CMU dict file and returns katakana readings.
func Parse(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ParseReader(f)
}

// ParseReader parses CMU dict lines from r. Only the primary pronunciation of
// each word is kept; alternates such as "HOUSE(2)" are counted and dropped.
func ParseReader(r io.Reader) (ParseResult, error) {
	result := ParseResult{
		Readings: make(map[string]string),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		result.Stats.TotalLines++
		line := scanner.Text()

		word, variant, phonemes, err := parseLine(line)
		if errors.Is(err, errSkipLine) {
			if strings.HasPrefix(line, ";;;") {
				result.Stats.CommentLines++
			}
			continue
		}
		if err != nil {
			continue
		}

		result.Stats.ParsedLines++
		if variant > 0 {
			result.Stats.VariantLines++
			continue
		}
		if !isDictionaryWord(word) {
			result.Stats.RejectedWords++
			continue
		}

		kana := PhonemesToKana(phonemes)
		if kana == "" {
			result.Stats.RejectedWords++
			continue
		}
		result.Readings[word] = kana
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	result.Stats.UniqueWords = len(result.Readings)
	return result, nil
}

// ToDomainWords converts parsed readings to words carrying the CMU reading.
func (r ParseResult) ToDomainWords() []domain.Word {
	words := make([]domain.Word, 0, len(r.Readings))
	for surface, kana := range r.Readings {
		words = append(words, domain.Word{Surface: surface, CMUReading: kana})
	}
	return words
}

// isDictionaryWord rejects CMU entries that are punctuation names or carry
// digits, e.g. "!EXCLAMATION-POINT" or "3-D".
func isDictionaryWord(word string) bool {
	if word == "" {
		return false
	}
	if word[0] < 'a' || word[0] > 'z' {
		return false
	}
	for i := 1; i < len(word); i++ {
		c := word[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c == '\'', c == '-', c == '.':
		default:
			return false
		}
	}
	return true
}

// stripStress removes the trailing stress marker (0, 1, 2) from an ARPAbet phoneme.
func stripStress(phoneme string) string {
	if len(phoneme) == 0 {
		return phoneme
	}
	last := phoneme[len(phoneme)-1]
	if last == '0' || last == '1' || last == '2' {
		return phoneme[:len(phoneme)-1]
	}
	return phoneme
}

// parseLine parses a single line from a CMU dict file.
// Returns the normalized word, its variant index and the stress-free phonemes,
// or errSkipLine for comments and empty lines.
func parseLine(line string) (string, int, []string, error) {
	if line == "" {
		return "", 0, nil, errSkipLine
	}

	if strings.HasPrefix(line, ";;;") {
		return "", 0, nil, errSkipLine
	}

	// CMU format: WORD  PHONEME1 PHONEME2 ... (two spaces between word and phonemes).
	parts := strings.SplitN(line, "  ", 2)
	if len(parts) != 2 {
		return "", 0, nil, errSkipLine
	}

	rawWord := strings.TrimSpace(parts[0])
	phonemesStr := strings.TrimSpace(parts[1])

	if rawWord == "" || phonemesStr == "" {
		return "", 0, nil, errSkipLine
	}

	word, variantIdx := parseWordAndVariant(rawWord)

	phonemes := strings.Fields(phonemesStr)
	for i, p := range phonemes {
		phonemes[i] = stripStress(p)
	}

	return word, variantIdx, phonemes, nil
}

// parseWordAndVariant splits a raw CMU word like "HOUSE(2)" into
// the normalized word and variant index.
// Primary pronunciation has variant index 0, "(2)" maps to 1, "(3)" to 2, etc.
func parseWordAndVariant(raw string) (string, int) {
	idx := strings.IndexByte(raw, '(')
	if idx == -1 {
		return domain.NormalizeSurface(raw), 0
	}

	word := raw[:idx]
	end := strings.IndexByte(raw[idx:], ')')
	if end == -1 {
		return domain.NormalizeSurface(raw), 0
	}

	numStr := raw[idx+1 : idx+end]
	n, err := strconv.Atoi(numStr)
	if err != nil {
		return domain.NormalizeSurface(raw), 0
	}

	return domain.NormalizeSurface(word), n - 1
}
