package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileFormat identifies a dictionary file encoding.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // latin<TAB>ethiopic per line
	FormatBinary             // msgpack array of entries
)

// FormatInfo contains metadata about a dictionary file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Tab separated name pairs",
		Extensions:  []string{".tsv", ".txt"},
		MinSize:     3, // "a\tb"
	},
	FormatBinary: {
		Format:      FormatBinary,
		Description: "Msgpack name pairs",
		Extensions:  []string{".bin", ".msgpack"},
		MinSize:     1, // empty array marker
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "unknown"
}

// DetectFormat picks the format from the file extension.
func DetectFormat(filename string) FileFormat {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext {
				return format
			}
		}
	}
	return FormatUnknown
}

// ValidateFileFormat checks that filename exists, has a known extension and is not
// smaller than the smallest valid file of that format.
func ValidateFileFormat(filename string) (FileFormat, error) {
	format := DetectFormat(filename)
	if format == FormatUnknown {
		return format, fmt.Errorf("unsupported dictionary file extension: %s", filepath.Ext(filename))
	}

	fileInfo, err := os.Stat(filename)
	if err != nil {
		return format, fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return format, fmt.Errorf("%s is a directory", filename)
	}
	if fileInfo.Size() < supportedFormats[format].MinSize {
		return format, fmt.Errorf("file %s too small for %s format (%d bytes)", filename, format, fileInfo.Size())
	}
	return format, nil
}
