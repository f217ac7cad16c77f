package metafile

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp holds a date-time value as written in a metadata file.
// It accepts quoted strings as well as native TOML and YAML date-times,
// so `date = 2022-03-01T10:00:00Z` and `date = "2022-03-01T10:00:00Z"`
// decode to the same text.
type Timestamp string

// UnmarshalTOML implements toml.Unmarshaler.
func (t *Timestamp) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case string:
		*t = Timestamp(val)
	case time.Time:
		*t = Timestamp(val.Format(time.RFC3339))
	default:
		return fmt.Errorf("timestamp: unsupported value %v (%T)", v, v)
	}
	return nil
}

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (t *Timestamp) UnmarshalYAML(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	} else if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}
	*t = Timestamp(s)
	return nil
}

// String returns the raw timestamp text.
func (t Timestamp) String() string {
	return string(t)
}
