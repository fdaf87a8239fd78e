package journal

import (
	"strings"

	"github.com/jinzhu/inflection"
)

const tableNameSuffix = "_journal"

// TableNameForSubject derives the default journal table name for a subject
// type, e.g. "person" -> "people_journal". The subject type is lowercased
// and pluralized; an empty subject type yields an empty table name.
func TableNameForSubject(subjectType string) string {
	trimmed := strings.TrimSpace(strings.ToLower(subjectType))
	if trimmed == "" {
		return ""
	}

	return inflection.Plural(trimmed) + tableNameSuffix
}
