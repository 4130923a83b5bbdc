package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadURLs reads the line-oriented input file: one URL per line, blank
// lines skipped. A missing or unreadable file is the only fatal
// condition in the whole run, so the error carries the path.
func LoadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input file %s: %w", path, err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(stripBOM(f))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input file %s: %w", path, err)
	}
	return urls, nil
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rn, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if rn != '\uFEFF' {
		br.UnreadRune()
	}
	return br
}
