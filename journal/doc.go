// Package journal provides core abstractions and types for persisting an
// audit trail of state-mutating method calls, captured by before-advice
// hooks.
//
// This package defines the storage-agnostic pieces used by concrete journal
// store implementations: the storable entry DTO, the entry filter, table
// naming helpers, and common error definitions.
//
// Key types:
//   - StorableEntry: one recorded mutation with the subject's before-image
//     and the call's arguments, both as JSON
//   - Filter: criteria for querying entries back (subject types, subject
//     IDs, operations, recorded-at time range)
//
// Common usage pattern:
//
//	entry, err := journal.BuildStorableEntry(
//		"person", personID, "rename", time.Now(), beforeJSON, argsJSON)
//	if err != nil {
//		// handle error
//	}
//
//	err = store.Append(ctx, entry)
//
//	filter := journal.BuildEntryFilter().
//		Matching().
//		AnySubjectTypeOf("person").
//		AnySubjectIDOf(personID).
//		Finalize()
//
//	entries, err := store.Query(ctx, filter)
package journal
