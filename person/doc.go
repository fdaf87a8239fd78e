// Package person provides the example consumer of the advice combinator: a
// Person entity whose rename operation is undoable through a lazily
// initialized snapshot stack.
//
// The interesting part is not the entity itself but how its method table is
// assembled. The stack-touching methods (Rename, Undo) are decorated at
// construction time with before advice:
//
//   - EnsureUndoStack guarantees the undo stack exists before any body that
//     reads or mutates it runs, so no body carries lazy-init guard code.
//   - Optional caller-supplied hooks (e.g. JournalRenames) run after
//     EnsureUndoStack and before the rename body, observing the same
//     receiver and arguments.
//
// FullName is deliberately undecorated; reading derived state neither needs
// nor triggers the lazy initialization.
//
// Usage:
//
//	p := person.BuildPerson("barak", "obama")
//
//	if _, err := p.Rename("Barak", "Obama"); err != nil {
//		// a rename hook failed; the rename did not happen
//	}
//
//	p.FullName() // "Barak Obama"
//
//	_, _ = p.Undo()
//	p.FullName() // "barak obama"
//
// With journaling:
//
//	p := person.BuildPerson("barak", "obama",
//		person.JournalRenames(ctx, journalStore))
package person
