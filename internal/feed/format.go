package feed

import "strings"

type Format string

const (
	FORMAT_RSS  Format = "rss"
	FORMAT_ATOM Format = "atom"
	FORMAT_JSON Format = "json"
)

// ParseFormat maps a URL extension to a feed format. Anything unknown is RSS.
func ParseFormat(format string) Format {
	switch Format(strings.ToLower(strings.TrimPrefix(format, "."))) {
	case FORMAT_ATOM:
		return FORMAT_ATOM
	case FORMAT_JSON:
		return FORMAT_JSON
	default:
		return FORMAT_RSS
	}
}

func (f Format) MediaType() string {
	switch f {
	case FORMAT_ATOM:
		return "application/atom+xml"
	case FORMAT_JSON:
		return "application/json"
	default:
		return "application/rss+xml"
	}
}
