package journal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwolters/before-advice-go/journal"
)

func Test_TableNameForSubject(t *testing.T) {
	testCases := []struct {
		subjectType string
		expected    string
	}{
		{subjectType: "person", expected: "people_journal"},
		{subjectType: "Person", expected: "people_journal"},
		{subjectType: "  person  ", expected: "people_journal"},
		{subjectType: "book", expected: "books_journal"},
		{subjectType: "", expected: ""},
		{subjectType: "   ", expected: ""},
	}

	for _, tc := range testCases {
		t.Run("subject type: "+tc.subjectType, func(t *testing.T) {
			assert.Equal(t, tc.expected, journal.TableNameForSubject(tc.subjectType))
		})
	}
}
