package lexicon

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// MapSource serves entries from an in-memory map.
type MapSource map[string]string

func (MapSource) Name() string { return "map" }

func (m MapSource) Each(ctx context.Context, fn func(surface, reading string) error) error {
	for surface, reading := range m {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(surface, reading); err != nil {
			return err
		}
	}
	return nil
}

// TSVSource reads "surface<TAB>reading" lines from a file. Blank lines and
// lines starting with '#' are ignored.
type TSVSource struct {
	Path string
}

func (s TSVSource) Name() string { return "tsv:" + s.Path }

func (s TSVSource) Each(ctx context.Context, fn func(surface, reading string) error) error {
	f, err := os.Open(s.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	return EachTSV(ctx, f, fn)
}

// EachTSV parses tab-separated surface/reading lines from r.
func EachTSV(ctx context.Context, r io.Reader, fn func(surface, reading string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		surface, reading, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("line %d: expected surface<TAB>reading", lineNum)
		}
		if err := fn(strings.TrimSpace(surface), strings.TrimSpace(reading)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan at line %d: %w", lineNum, err)
	}
	return nil
}
