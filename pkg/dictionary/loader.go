package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// LoadFile reads extra entries from a text or msgpack dictionary file.
// Invalid entries are skipped with a warning; a file without any valid entry fails.
func LoadFile(filename string) ([]Entry, error) {
	format, err := ValidateFileFormat(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file %s: %w", filename, err)
	}
	defer file.Close()

	var entries []Entry
	switch format {
	case FormatText:
		entries, err = ReadText(file)
	case FormatBinary:
		entries, err = ReadBinary(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid entries in %s", filename)
	}

	log.Debugf("Loaded %d dictionary entries from %s (%s)", len(entries), filename, format)
	return entries, nil
}

// ReadText parses "latin<TAB>ethiopic" lines. Blank lines and lines starting with
// '#' are ignored. Keys are lowercased.
func ReadText(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		latin, ethiopic, ok := strings.Cut(line, "\t")
		if !ok {
			log.Warnf("Dictionary line %d has no tab separator, skipping", lineNo)
			continue
		}
		e := Entry{
			Latin:    strings.ToLower(strings.TrimSpace(latin)),
			Ethiopic: strings.TrimSpace(ethiopic),
		}
		if err := validateEntry(e); err != nil {
			log.Warnf("Dictionary line %d skipped: %v", lineNo, err)
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ReadBinary decodes a msgpack array of entries, dropping the invalid ones.
func ReadBinary(r io.Reader) ([]Entry, error) {
	var raw []Entry
	if err := msgpack.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode entries: %w", err)
	}

	entries := raw[:0]
	for i, e := range raw {
		if err := validateEntry(e); err != nil {
			log.Warnf("Dictionary entry %d skipped: %v", i, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteBinary stores entries as a msgpack file readable by LoadFile. The data goes to
// a temp file next to filename that is renamed into place once fully written, so a
// failed write leaves any existing file untouched.
func WriteBinary(filename string, entries []Entry) error {
	if err := Validate(entries); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".dict-*.bin")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := msgpack.NewEncoder(w).Encode(entries); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filename, err)
	}
	return os.Rename(tmp.Name(), filename)
}
