package usecase

import (
	"regexp"
	"strings"
)

// ShortcodeTags are the tag names recognised in host content. The prefixed form is
// what earlier plugin releases wrote into posts.
var ShortcodeTags = []string{"bunny_video", "doka_bunny_video"}

var (
	shortcodeRe     = regexp.MustCompile(`\[(?:` + strings.Join(ShortcodeTags, "|") + `)(\s[^\]]*)?\]`)
	shortcodeAttrRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_-]*)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"']+))`)
)

func expandShortcodes(content string, render func(map[string]string) string) string {
	return shortcodeRe.ReplaceAllStringFunc(content, func(tag string) string {
		m := shortcodeRe.FindStringSubmatch(tag)
		return render(parseShortcodeAttrs(m[1]))
	})
}

func parseShortcodeAttrs(s string) map[string]string {
	attrs := map[string]string{}
	for _, m := range shortcodeAttrRe.FindAllStringSubmatch(s, -1) {
		val := m[2]
		if m[3] != "" {
			val = m[3]
		} else if m[4] != "" {
			val = m[4]
		}
		attrs[strings.ToLower(m[1])] = val
	}
	return attrs
}
