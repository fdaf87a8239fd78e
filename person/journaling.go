package person

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/mwolters/before-advice-go/advice"
	"github.com/mwolters/before-advice-go/journal"
)

// RenameJournal is the subset of a journal store the journaling hook needs.
// journal/postgresengine.JournalStore satisfies it.
type RenameJournal interface {
	Append(ctx context.Context, entry journal.StorableEntry, additionalEntries ...journal.StorableEntry) error
}

// beforeImage is the journaled JSON shape of a Person's state prior to a rename.
type beforeImage struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// JournalRenames builds a before-advice hook that records the state a rename
// is about to overwrite, together with the requested arguments, as a
// journal.StorableEntry.
//
// Because it runs strictly before the rename body, the hook captures the
// pre-mutation state without the body's cooperation. A journal failure
// aborts the rename (fail-fast); the Person is left unchanged.
func JournalRenames(ctx context.Context, renameJournal RenameJournal) advice.Hook[*Person] {
	return func(p *Person, args []any) error {
		beforeJSON, marshalErr := jsoniter.ConfigFastest.Marshal(beforeImage{
			FirstName: p.firstName,
			LastName:  p.lastName,
		})
		if marshalErr != nil {
			return marshalErr
		}

		argsJSON, marshalErr := jsoniter.ConfigFastest.Marshal(args)
		if marshalErr != nil {
			return marshalErr
		}

		entry, buildErr := journal.BuildStorableEntry(
			SubjectType,
			p.id.String(),
			OperationRename,
			time.Now(),
			beforeJSON,
			argsJSON,
		)
		if buildErr != nil {
			return buildErr
		}

		return renameJournal.Append(ctx, entry)
	}
}
