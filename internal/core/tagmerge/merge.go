// Package tagmerge fills {{name}} placeholders in email bodies and AI
// prompts.
//
// Merge only replaces tags present in the mapping it is given: a template
// tag with no mapping entry stays in the output as literal text. The
// substitution is a single pass, so placeholders inside substituted values
// are never expanded. Values are inserted verbatim; content that may come
// from users has to go through a Sanitizer first.
package tagmerge

import (
	"sort"
	"strings"
)

// Tag returns the placeholder token for name.
func Tag(name string) string {
	return "{{" + name + "}}"
}

// Merge replaces every occurrence of each {{name}} with tags[name].
func Merge(template string, tags map[string]string) string {
	if len(tags) == 0 {
		return template
	}
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, Tag(name), tags[name])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// WithFallbacks returns a copy of tags where every empty or missing entry
// named in fallbacks takes the fallback value.
func WithFallbacks(tags, fallbacks map[string]string) map[string]string {
	out := make(map[string]string, len(tags)+len(fallbacks))
	for k, v := range tags {
		out[k] = v
	}
	for k, v := range fallbacks {
		if strings.TrimSpace(out[k]) == "" {
			out[k] = v
		}
	}
	return out
}
