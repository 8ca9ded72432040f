package facetag

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoLabels is returned when a label file contains no labels
var ErrNoLabels = errors.New("no labels found")

// LoadLabels reads a label catalog from the given text file.  It should
// contain one label per line, blank lines and lines starting with # are
// ignored.
func LoadLabels(file string) ([]string, error) {

	// open the file
	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	// create a scanner to read the file.
	scanner := bufio.NewScanner(f)

	var labels []string

	// read and trim each line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		labels = append(labels, line)
	}

	// check for errors during scanning
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	if len(labels) == 0 {
		return nil, fmt.Errorf("%s: %w", file, ErrNoLabels)
	}

	return labels, nil
}
