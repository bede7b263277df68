package photo

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Source is an opaque, swappable reference to a raster: a data URI, an
// absolute http(s) URL, a path on the image service ("/static/...") or a
// local file path.
type Source string

// Kind classifies a Source.
type Kind int

const (
	KindEmpty Kind = iota
	KindDataURI
	KindURL
	KindServicePath
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindDataURI:
		return "data-uri"
	case KindURL:
		return "url"
	case KindServicePath:
		return "service-path"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Kind reports how the source is resolved.
func (s Source) Kind() Kind {
	v := string(s)
	switch {
	case v == "":
		return KindEmpty
	case strings.HasPrefix(v, "data:"):
		return KindDataURI
	case strings.HasPrefix(v, "http://"), strings.HasPrefix(v, "https://"):
		return KindURL
	case strings.HasPrefix(v, "/static/"), strings.HasPrefix(v, "static/"):
		return KindServicePath
	default:
		return KindFile
	}
}

// String returns the source abbreviated for logs; data URIs carry the full
// payload otherwise.
func (s Source) String() string {
	if s.Kind() == KindDataURI && len(s) > 48 {
		return string(s[:48]) + "..."
	}
	return string(s)
}

var errNotDataURI = errors.New("not a base64 data uri")

// EncodeDataURI wraps data in a base64 data URI. The media type is detected
// from the content.
func EncodeDataURI(data []byte) Source {
	mt := mimetype.Detect(data).String()
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return Source("data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURI returns the media type and payload of a base64 data URI.
func DecodeDataURI(s Source) (string, []byte, error) {
	v := string(s)
	if !strings.HasPrefix(v, "data:") {
		return "", nil, errNotDataURI
	}
	header, payload, ok := strings.Cut(v[len("data:"):], ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return "", nil, errNotDataURI
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data uri: %w", err)
	}
	return strings.TrimSuffix(header, ";base64"), data, nil
}
