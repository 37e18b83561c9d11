package finder

import (
	"strings"
)

// textExtensions are the suffixes of the files the MPW tools treat as text.
var textExtensions = map[string]bool{
	"aii":    true, // assembler
	"asm":    true,
	"c":      true,
	"lst":    true, // IIgs assembly listing
	"macros": true,
	"pii":    true, // pascal
	"rii":    true, // rez
	"src":    true, // assembly equates
}

// binaryExtensions are the suffixes of known binary files.
var binaryExtensions = map[string]bool{
	"obj": true,
}

// Extension returns the lower-cased extension of the given name.
//
// The extension follows the last '.', '/', or ':' in the name.  If that
// character isn't a '.', or nothing follows it, there is no extension.
func Extension(name string) string {
	pos := strings.LastIndexAny(name, "./:")
	if pos < 0 {
		return ""
	}
	if name[pos] != '.' {
		return ""
	}
	if pos+1 >= len(name) {
		return ""
	}
	return strings.ToLower(name[pos+1:])
}

// IsTextFile returns true if the name has a known text extension.
func IsTextFile(name string) bool {
	return textExtensions[Extension(name)]
}

// IsBinaryFile returns true if the name has a known binary extension.
func IsBinaryFile(name string) bool {
	return binaryExtensions[Extension(name)]
}
