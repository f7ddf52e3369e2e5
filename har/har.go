// Package har extracts the parts of a browser network trace the map
// cares about: which hosts were contacted, in what order, and how
// many bytes each of them served.
package har

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/afero"
)

// File is a minimal slice of the HAR format. Only the fields the
// aggregation needs are extracted, everything else in the trace is
// ignored.
type File struct {
	Log struct {
		Entries []Entry `json:"entries"`
	} `json:"log"`
}

// Entry is one captured request/response pair.
type Entry struct {
	StartedDateTime time.Time `json:"startedDateTime"`
	Request         struct {
		URL string `json:"url"`
	} `json:"request"`
	Response struct {
		BodySize int64 `json:"bodySize"`
		Content  struct {
			Size int64 `json:"size"`
		} `json:"content"`
	} `json:"response"`
}

// Bytes returns the number of bytes the entry transferred over the
// wire, falling back to the decoded content size when the recorder
// did not know the wire size (bodySize is -1 for cached responses).
func (e Entry) Bytes() int64 {
	if e.Response.BodySize > 0 {
		return e.Response.BodySize
	}

	if e.Response.Content.Size > 0 {
		return e.Response.Content.Size
	}

	return 0
}

// Host extracts a hostname of the entry's request.
func (e Entry) Host() (string, error) {
	parsed, err := url.Parse(e.Request.URL)
	if err != nil {
		return "", fmt.Errorf("cannot parse url: %w", err)
	}

	if parsed.Hostname() == "" {
		return "", fmt.Errorf("url %q has no host", e.Request.URL)
	}

	return parsed.Hostname(), nil
}

// Parse reads the whole HAR file.
func Parse(fs afero.Fs, path string) (*File, error) {
	source, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open har file: %w", err)
	}

	defer source.Close()

	parsed := &File{}

	if err := json.NewDecoder(bufio.NewReader(source)).Decode(parsed); err != nil {
		return nil, fmt.Errorf("cannot parse har file: %w", err)
	}

	return parsed, nil
}
