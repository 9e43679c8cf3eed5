package domain

import "strings"

// OSIdentity describes the host distribution as reported by an os-release source.
type OSIdentity struct {
	// DistroName is the NAME field (falling back to ID), empty when neither is present.
	DistroName string

	// Raw holds every well-formed KEY=VALUE pair with quotes stripped from values.
	Raw map[string]string
}

// ParseOSRelease parses os-release text.
// Comment lines and lines that do not split into exactly two "=" fields are skipped.
// Lines have no length limit.
func ParseOSRelease(text string) OSIdentity {
	raw := make(map[string]string)

	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "=")
		if len(fields) != 2 {
			continue
		}

		key := strings.TrimSpace(fields[0])
		if key == "" {
			continue
		}
		raw[key] = strings.Trim(strings.TrimSpace(fields[1]), `"'`)
	}

	return NewOSIdentity(raw)
}

// NewOSIdentity builds an identity from already parsed fields.
func NewOSIdentity(raw map[string]string) OSIdentity {
	if raw == nil {
		raw = make(map[string]string)
	}
	name := raw["NAME"]
	if name == "" {
		name = raw["ID"]
	}
	return OSIdentity{DistroName: name, Raw: raw}
}
