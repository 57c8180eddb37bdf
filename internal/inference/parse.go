package inference

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Parsed holds a structured value decoded from generated text, or only the raw text when
// the text held no usable JSON.
type Parsed[T any] struct {
	Structured *T
	Raw        string
}

func (p Parsed[T]) OK() bool {
	return p.Structured != nil
}

// ParseObject decodes the first balanced JSON object found in text.
func ParseObject[T any](text string) Parsed[T] {
	return parse[T](text, '{', '}')
}

// ParseArray decodes the first balanced JSON array found in text.
func ParseArray[T any](text string) Parsed[T] {
	return parse[T](text, '[', ']')
}

func parse[T any](text string, open, closing byte) Parsed[T] {
	result := Parsed[T]{Raw: text}
	fragment, ok := extractBalanced(text, open, closing)
	if !ok {
		return result
	}
	var v T
	if err := json.Unmarshal([]byte(fragment), &v); err != nil {
		return result
	}
	result.Structured = &v
	return result
}

// extractBalanced returns the first open..closing span whose delimiters balance,
// ignoring delimiters inside JSON strings.
func extractBalanced(text string, open, closing byte) (string, bool) {
	start := strings.IndexByte(text, open)
	for start >= 0 {
		depth := 0
		inString := false
		escaped := false
		for i := start; i < len(text); i++ {
			ch := text[i]
			if escaped {
				escaped = false
				continue
			}
			if inString {
				switch ch {
				case '\\':
					escaped = true
				case '"':
					inString = false
				}
				continue
			}
			switch ch {
			case '"':
				inString = true
			case open:
				depth++
			case closing:
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		}
		next := strings.IndexByte(text[start+1:], open)
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

var (
	leadingMarkers   = regexp.MustCompile(`^[\d.\-*\s"]+`)
	topicPunctuation = regexp.MustCompile(`["',]`)
)

// ExtractQuestions pulls question lines out of free text.
func ExtractQuestions(text string, limit int) []string {
	questions := make([]string, 0, limit)
	for _, line := range strings.Split(text, "\n") {
		if len(questions) == limit {
			break
		}
		line = strings.TrimSpace(line)
		if len(line) <= 10 || !strings.Contains(line, "?") {
			continue
		}
		line = leadingMarkers.ReplaceAllString(line, "")
		line = strings.TrimSpace(strings.TrimSuffix(line, `"`))
		if line != "" {
			questions = append(questions, line)
		}
	}
	return questions
}

// ExtractTopics pulls short topic names out of free text.
func ExtractTopics(text string, limit int) []string {
	topics := make([]string, 0, limit)
	for _, line := range strings.Split(text, "\n") {
		if len(topics) == limit {
			break
		}
		line = strings.TrimSpace(line)
		if len(line) <= 3 || len(line) >= 50 {
			continue
		}
		line = leadingMarkers.ReplaceAllString(line, "")
		line = strings.TrimSpace(topicPunctuation.ReplaceAllString(line, ""))
		if len(line) > 3 {
			topics = append(topics, line)
		}
	}
	return topics
}

// Limit trims items to at most n non-empty entries.
func Limit(items []string, n int) []string {
	out := make([]string, 0, n)
	for _, item := range items {
		if len(out) == n {
			break
		}
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
