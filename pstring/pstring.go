// Package pstring handles the strings which Mac OS programs pass to
// the toolbox.
//
// Names are "Pascal strings": a single length byte followed by up to
// 255 bytes of text.  Paths use ':' as their separator, rather than
// '/', and we convert them before handing them to the host.
package pstring

import (
	"strings"
)

// Memory is the subset of guest memory we need.
type Memory interface {
	GetRange(addr uint32, size int) ([]uint8, error)
	SetRange(addr uint32, data ...uint8) error
}

// MaxLength is the longest string a length byte can describe.
const MaxLength = 255

// Read returns the Pascal string at addr.
//
// A nil pointer is treated as the empty string.
func Read(mem Memory, addr uint32) (string, error) {
	if addr == 0 {
		return "", nil
	}

	l, err := mem.GetRange(addr, 1)
	if err != nil {
		return "", err
	}
	return ReadString(mem, addr+1, int(l[0]))
}

// ReadString returns the n bytes at addr as a string.
func ReadString(mem Memory, addr uint32, n int) (string, error) {
	if n == 0 {
		return "", nil
	}
	data, err := mem.GetRange(addr, n)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write stores str at addr as a Pascal string, truncating it to
// MaxLength bytes.
func Write(mem Memory, addr uint32, str string) error {
	if len(str) > MaxLength {
		str = str[:MaxLength]
	}

	data := make([]uint8, 0, len(str)+1)
	data = append(data, uint8(len(str)))
	data = append(data, str...)
	return mem.SetRange(addr, data...)
}

// MacToUnix converts a Mac path into one suitable for the host.
//
// Names which already contain '/', or which contain no ':', are
// returned unchanged.  Otherwise:
//
//	"Vol:Dir:File"  -> "/Vol/Dir/File"
//	":Dir:File"     -> "Dir/File"
//	"::File"        -> "../File"
//	":::File"       -> "../../File"
func MacToUnix(name string) string {
	if strings.Contains(name, "/") || !strings.Contains(name, ":") {
		return name
	}

	relative := strings.HasPrefix(name, ":")
	if relative {
		name = name[1:]
	}

	parts := strings.Split(name, ":")
	out := make([]string, 0, len(parts))
	for i, p := range parts {
		if p == "" {
			// A trailing ':' names a directory.
			if i == len(parts)-1 {
				break
			}
			out = append(out, "..")
			continue
		}
		out = append(out, p)
	}

	res := strings.Join(out, "/")
	if !relative {
		res = "/" + res
	}
	if res == "" {
		res = "."
	}
	return res
}
