package domain

import "strings"

// ResolveTemplate substitutes {name} placeholders in template with the values in paths.
//
// The left-most placeholder whose name is known is replaced everywhere, then the
// scan starts over, so values may themselves contain placeholders. Placeholders
// with unknown names are left as they are. A value that contains its own
// placeholder never terminates; declarations must not be self-referential.
func ResolveTemplate(template string, paths map[string]string) string {
	for {
		token, value, ok := firstKnownPlaceholder(template, paths)
		if !ok {
			return template
		}
		template = strings.ReplaceAll(template, token, value)
	}
}

func firstKnownPlaceholder(s string, paths map[string]string) (token, value string, ok bool) {
	for offset := 0; offset < len(s); {
		open := strings.IndexByte(s[offset:], '{')
		if open < 0 {
			return "", "", false
		}
		open += offset

		end := strings.IndexByte(s[open+1:], '}')
		if end < 0 {
			return "", "", false
		}
		end += open + 1

		// A nested '{' starts a new candidate: "{{a}" must still find "{a}".
		if nested := strings.LastIndexByte(s[open+1:end], '{'); nested >= 0 {
			open += nested + 1
		}

		name := s[open+1 : end]
		if v, found := paths[name]; found {
			return s[open : end+1], v, true
		}
		offset = open + 1
	}
	return "", "", false
}
