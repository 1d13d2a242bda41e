package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects how a tree is dumped.
type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

type formatInfo struct {
	name    string
	aliases []string
	exts    []string
}

var formats = [...]formatInfo{
	TextFormat: {name: "text", aliases: []string{"t"}, exts: []string{".txt", ".dump"}},
	YAMLFormat: {name: "yaml", aliases: []string{"y", "yml"}, exts: []string{".yaml", ".yml"}},
	JSONFormat: {name: "json", aliases: []string{"j"}, exts: []string{".json"}},
}

// Formats lists all formats.
func Formats() []Format {
	res := make([]Format, len(formats))
	for i := range formats {
		res[i] = Format(i)
	}
	return res
}

// ParseFormat accepts a format name or one of its aliases, ignoring case.
func ParseFormat(v string) (Format, error) {
	v = strings.ToLower(v)
	for i := range formats {
		fi := &formats[i]
		if v == fi.name {
			return Format(i), nil
		}
		for _, a := range fi.aliases {
			if v == a {
				return Format(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// ForFile returns the format implied by the extension of name.
func ForFile(name string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return 0, false
	}
	for i := range formats {
		for _, e := range formats[i].exts {
			if ext == e {
				return Format(i), true
			}
		}
	}
	return 0, false
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(formats)
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formats[f].name
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(formats[f].name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	v, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
