package wordlist

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// SystemDictionaries lists well-known word list locations, probed in order
// when no explicit path is configured.
var SystemDictionaries = []string{
	"/usr/dict/words",
	"/usr/share/dict/words",
}

// Resolve returns the word list path to read. An explicit path must name an
// existing regular file. With no explicit path, the candidates are probed in
// order and the first existing regular file wins.
func Resolve(path string, candidates []string) (string, error) {
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		if !isRegularFile(trimmed) {
			return "", fmt.Errorf("word list %q cannot be found", trimmed)
		}
		return trimmed, nil
	}
	if len(candidates) == 0 {
		candidates = SystemDictionaries
	}
	for _, candidate := range candidates {
		if isRegularFile(candidate) {
			return candidate, nil
		}
	}
	return "", errors.New("no word list specified and no system dictionary found")
}

// Read loads the entire word list into memory and splits it into tokens on
// any run of whitespace.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return strings.Fields(string(data)), nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
