package journal

import (
	"errors"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrEmptySubjectType is returned when an empty subject type is provided.
	ErrEmptySubjectType = errors.New("subject type must not be empty")

	// ErrEmptySubjectID is returned when an empty subject id is provided.
	ErrEmptySubjectID = errors.New("subject id must not be empty")

	// ErrEmptyOperation is returned when an empty operation name is provided.
	ErrEmptyOperation = errors.New("operation must not be empty")

	// ErrInvalidBeforeJSON is returned when the before-image JSON is malformed.
	ErrInvalidBeforeJSON = errors.New("before json is not valid")

	// ErrInvalidArgsJSON is returned when the arguments JSON is malformed.
	ErrInvalidArgsJSON = errors.New("args json is not valid")

	// ErrInvalidEntryID is returned when an entry id is not a valid UUID.
	ErrInvalidEntryID = errors.New("entry id is not a valid uuid")
)

// StorableEntries is an alias type for a slice of StorableEntry.
type StorableEntries = []StorableEntry

// StorableEntry is a DTO (data transfer object) used by journal stores to append
// recorded mutations and query them back.
//
// It is built on scalars to be completely agnostic of the subject's
// implementation in the client code: the subject's state before the mutation
// and the call's arguments are both carried as JSON.
//
// While its properties are exported, it should only be constructed with the
// supplied factory methods:
//   - BuildStorableEntry
//   - RebuildStorableEntry
type StorableEntry struct {
	EntryID     uuid.UUID
	SubjectType string
	SubjectID   string
	Operation   string
	RecordedAt  time.Time
	BeforeJSON  []byte
	ArgsJSON    []byte
}

// BuildStorableEntry is a factory method for StorableEntry.
//
// It populates the StorableEntry with the given scalar input and assigns a
// fresh EntryID. Returns an error if any identifier is empty or if
// beforeJSON or argsJSON are not valid JSON.
func BuildStorableEntry(
	subjectType string,
	subjectID string,
	operation string,
	recordedAt time.Time,
	beforeJSON []byte,
	argsJSON []byte,
) (StorableEntry, error) {

	entry := StorableEntry{
		EntryID:     uuid.New(),
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Operation:   operation,
		RecordedAt:  recordedAt,
		BeforeJSON:  beforeJSON,
		ArgsJSON:    argsJSON,
	}

	if err := entry.validate(); err != nil {
		return StorableEntry{}, err
	}

	return entry, nil
}

// RebuildStorableEntry is a factory method for StorableEntry used when
// reading entries back from storage, where the EntryID already exists.
func RebuildStorableEntry(
	entryID string,
	subjectType string,
	subjectID string,
	operation string,
	recordedAt time.Time,
	beforeJSON []byte,
	argsJSON []byte,
) (StorableEntry, error) {

	parsedID, parseErr := uuid.Parse(entryID)
	if parseErr != nil {
		return StorableEntry{}, errors.Join(ErrInvalidEntryID, parseErr)
	}

	entry := StorableEntry{
		EntryID:     parsedID,
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Operation:   operation,
		RecordedAt:  recordedAt,
		BeforeJSON:  beforeJSON,
		ArgsJSON:    argsJSON,
	}

	if err := entry.validate(); err != nil {
		return StorableEntry{}, err
	}

	return entry, nil
}

func (e StorableEntry) validate() error {
	if e.SubjectType == "" {
		return ErrEmptySubjectType
	}

	if e.SubjectID == "" {
		return ErrEmptySubjectID
	}

	if e.Operation == "" {
		return ErrEmptyOperation
	}

	if !jsoniter.ConfigFastest.Valid(e.BeforeJSON) {
		return ErrInvalidBeforeJSON
	}

	if !jsoniter.ConfigFastest.Valid(e.ArgsJSON) {
		return ErrInvalidArgsJSON
	}

	return nil
}
