package cdg

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultBaseURL is the versioned API root.
const DefaultBaseURL = "https://api.congress.gov/v3/"

// CredentialParam is the query key carrying the API key. It is always emitted last.
const CredentialParam = "api_key"

type segmentKind int

const (
	literalSegment segmentKind = iota
	numberSegment
	enumSegment
	textSegment
	pathSegment
)

// segment is one path component. Identifier segments hold the zero value when absent.
type segment struct {
	kind   segmentKind
	name   string
	text   string
	number int
	valid  bool
}

func literal(s string) segment { return segment{kind: literalSegment, name: s, text: s} }

func number(name string, n int) segment { return segment{kind: numberSegment, name: name, number: n} }

func text(name, s string) segment { return segment{kind: textSegment, name: name, text: s} }

func freePath(name, s string) segment { return segment{kind: pathSegment, name: name, text: s} }

func enum[E interface {
	~string
	Valid() bool
}](name string, e E) segment {
	return segment{kind: enumSegment, name: name, text: string(e), valid: e.Valid()}
}

// Reasons reported in URLConstructionError.
const (
	reasonNotConstructed = "endpoint was not built by a catalog constructor"
	reasonNegative       = "must not be negative"
	reasonUnknownEnum    = "unknown value"
	reasonInvalidUTF8    = "not valid UTF-8"
	reasonControlChar    = "contains a control character"
	reasonEmptyPath      = "path is empty"
	reasonDotSegment     = "dot segments are not allowed"
	reasonBaseURL        = "base URL is not an absolute http(s) URL"
)

// escape returns the encoded path pieces for s, or a reason when it cannot be encoded.
// An absent identifier yields no pieces.
func (s segment) escape() ([]string, string) {
	switch s.kind {
	case literalSegment:
		return []string{s.text}, ""
	case numberSegment:
		if s.number < 0 {
			return nil, reasonNegative
		}

		if s.number == 0 {
			return nil, ""
		}

		return []string{strconv.Itoa(s.number)}, ""
	case enumSegment:
		if s.text == "" {
			return nil, ""
		}

		if !s.valid {
			return nil, reasonUnknownEnum
		}

		return []string{url.PathEscape(s.text)}, ""
	case textSegment:
		if s.text == "" {
			return nil, ""
		}

		if reason := checkText(s.text); reason != "" {
			return nil, reason
		}

		return []string{url.PathEscape(s.text)}, ""
	case pathSegment:
		return escapeFreePath(s.text)
	}

	return nil, reasonNotConstructed
}

func escapeFreePath(path string) ([]string, string) {
	if reason := checkText(path); reason != "" {
		return nil, reason
	}

	var pieces []string

	for _, piece := range strings.Split(strings.Trim(path, "/"), "/") {
		switch piece {
		case "":
			continue
		case ".", "..":
			return nil, reasonDotSegment
		}

		pieces = append(pieces, url.PathEscape(piece))
	}

	if len(pieces) == 0 {
		return nil, reasonEmptyPath
	}

	return pieces, ""
}

func checkText(s string) string {
	if !utf8.ValidString(s) {
		return reasonInvalidUTF8
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return reasonControlChar
		}
	}

	return ""
}

// Path returns the escaped resource path below the API root, e.g. "bill/118/hr/1".
func (e Endpoint) Path() (string, error) {
	if e.kind == kindUnset {
		return "", &URLConstructionError{Kind: e.kind, Reason: reasonNotConstructed}
	}

	pieces := make([]string, 0, len(e.segments))

	for _, seg := range e.segments {
		escaped, reason := seg.escape()
		if reason != "" {
			value := seg.text
			if seg.kind == numberSegment {
				value = strconv.Itoa(seg.number)
			}

			return "", &URLConstructionError{Kind: e.kind, Segment: seg.name + "=" + value, Reason: reason}
		}

		pieces = append(pieces, escaped...)
	}

	return strings.Join(pieces, "/"), nil
}

// Query returns the encoded query string including the credential, which comes last.
func (e Endpoint) Query(apiKey string) string {
	var builder strings.Builder

	if e.params != nil {
		builder.WriteString(e.params.Encode())
	}

	if builder.Len() > 0 {
		builder.WriteByte('&')
	}

	builder.WriteString(CredentialParam)
	builder.WriteByte('=')
	builder.WriteString(url.QueryEscape(apiKey))

	return builder.String()
}

// BuildURL joins baseURL, the endpoint path and its query string. An empty baseURL means
// DefaultBaseURL. The result depends only on its inputs.
func BuildURL(baseURL string, e Endpoint, apiKey string) (string, error) {
	if apiKey == "" {
		return "", ErrMissingCredential
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", &URLConstructionError{Kind: e.kind, Segment: baseURL, Reason: reasonBaseURL}
	}

	path, err := e.Path()
	if err != nil {
		return "", err
	}

	return strings.TrimRight(baseURL, "/") + "/" + path + "?" + e.Query(apiKey), nil
}

// RedactURL replaces the credential value in a built URL with "***". Only the query
// string is inspected.
func RedactURL(raw string) string {
	base, query, found := strings.Cut(raw, "?")
	if !found {
		return raw
	}

	pairs := strings.Split(query, "&")
	for i, pair := range pairs {
		if name, _, _ := strings.Cut(pair, "="); name == CredentialParam {
			pairs[i] = CredentialParam + "=***"
		}
	}

	return base + "?" + strings.Join(pairs, "&")
}
