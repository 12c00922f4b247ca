package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// FileSource is an in-memory dictionary loaded from a newline-delimited
// word list file.
type FileSource struct {
	words map[string]struct{}
}

// NewFileSource loads a word list file. Words are lowercased; blank lines
// and lines starting with '#' are skipped.
func NewFileSource(path string) (*FileSource, error) {
	if path == "" {
		return nil, errors.New("path cannot be empty")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	words := make(map[string]struct{})

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words[word] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	return &FileSource{words: words}, nil
}

// Lookup reports whether word is in the loaded list.
func (s *FileSource) Lookup(_ context.Context, word string) (bool, error) {
	_, ok := s.words[strings.ToLower(word)]
	return ok, nil
}
