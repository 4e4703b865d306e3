package argp

import "strings"

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

func orDefault(s string, dflt string) string {
	if s == "" {
		return dflt
	}
	return s
}
