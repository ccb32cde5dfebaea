// Package suggestion turns the free text returned by the vision model into a
// category and a comma-joined tag string.
//
// Two strategies run in a fixed order: a strict JSON decode of the cleaned
// text, then a line scan of the original text. Parse never fails; fields it
// cannot find are left nil.
package suggestion

import (
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Source tells which strategy produced a Result.
type Source int

const (
	SourceNone Source = iota
	SourceStructured
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceStructured:
		return "structured"
	case SourceFallback:
		return "fallback"
	default:
		return "none"
	}
}

// TagSeparator joins tags in the stored tag string.
const TagSeparator = ", "

// Result is the outcome of Parse.
type Result struct {
	Category *string
	Tags     *string
	Source   Source
}

// TagList splits Tags on TagSeparator. It returns an empty, non-nil slice when
// there are no tags.
func (r Result) TagList() []string {
	if r.Tags == nil {
		return []string{}
	}
	return strings.Split(*r.Tags, TagSeparator)
}

// Parse extracts suggestions from raw model output.
func Parse(raw string) Result {
	category, tags, ok := parseStructured(clean(raw))
	source := SourceStructured
	if !ok {
		category, tags = parseLines(raw)
		source = SourceFallback
	}

	res := Result{
		Category: normalizeCategory(category),
		Tags:     normalizeTags(tags),
	}
	if res.Category != nil || res.Tags != nil {
		res.Source = source
	}
	return res
}

// clean strips surrounding whitespace and a ```json ... ``` fence.
func clean(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

type structuredReply struct {
	Category *string        `json:"categoria"`
	Tags     jsonStringList `json:"tags"`
}

// jsonStringList accepts either a list of strings or a single string.
type jsonStringList struct {
	value *string
}

func (l *jsonStringList) UnmarshalJSON(data []byte) error {
	var list []any
	if err := json.Unmarshal(data, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
		joined := strings.Join(parts, TagSeparator)
		l.value = &joined
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		l.value = &s
	}
	// other JSON kinds leave the tags absent
	return nil
}

// parseStructured reports ok=false when text is not a JSON object.
func parseStructured(text string) (category, tags *string, ok bool) {
	var reply structuredReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return nil, nil, false
	}
	return reply.Category, reply.Tags.value, true
}

const (
	categoryMarker = "categoria:"
	tagsMarker     = "tags:"
)

// parseLines scans text lower-cased, one line at a time. Later lines win.
func parseLines(text string) (category, tags *string) {
	for _, line := range strings.Split(strings.ToLower(text), "\n") {
		if _, after, found := strings.Cut(line, categoryMarker); found {
			c := capitalize(strings.TrimSpace(after))
			category = &c
		} else if _, after, found := strings.Cut(line, tagsMarker); found {
			t := strings.TrimSpace(after)
			tags = &t
		}
	}
	return category, tags
}

func normalizeCategory(category *string) *string {
	if category == nil {
		return nil
	}
	c := capitalize(strings.TrimSpace(*category))
	if c == "" {
		return nil
	}
	return &c
}

func normalizeTags(tags *string) *string {
	if tags == nil {
		return nil
	}
	t := strings.TrimSpace(*tags)
	if t == "" {
		return nil
	}
	return &t
}

// capitalize upper-cases the first rune and keeps the rest as is.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
