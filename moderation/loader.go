package moderation

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"path"
	"strings"
	"tienda-live/errors"
)

//go:embed censored/*.txt
var censoredFolder embed.FS

// Dictionary is the merged list of forbidden words and the languages it covers.
type Dictionary struct {
	Words     []string
	Languages []string
}

// LoadDictionary reads the embedded word lists (one file per language,
// one word per line) and adds the extra words given by configuration.
func LoadDictionary(extra []string) (Dictionary, error) {
	return loadFrom(censoredFolder, "censored", extra)
}

func loadFrom(fsys fs.FS, dir string, extra []string) (Dictionary, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return Dictionary{}, err
	}

	var languages []string
	unique := make(map[string]struct{})
	for _, w := range extra {
		if w = strings.TrimSpace(w); w != "" {
			unique[strings.ToLower(w)] = struct{}{}
		}
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return Dictionary{}, err
		}
		// Scanner copes with \r\n
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" && !strings.HasPrefix(line, "#") {
				unique[strings.ToLower(line)] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return Dictionary{}, err
		}
	}

	if len(unique) == 0 {
		return Dictionary{}, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(unique))
	for w := range unique {
		words = append(words, w)
	}
	return Dictionary{Words: words, Languages: languages}, nil
}
