package person

import (
	"github.com/google/uuid"

	"github.com/mwolters/before-advice-go/advice"
	"github.com/mwolters/before-advice-go/internal/stack"
)

const (
	// SubjectType identifies Person entities in journal entries.
	SubjectType = "person"

	// OperationRename is the journal operation name for Rename calls.
	OperationRename = "rename"
)

// Snapshot is an immutable capture of a Person's name fields at a point in
// time, pushed onto the undo stack before a rename mutates them.
type Snapshot struct {
	firstName string
	lastName  string
}

func (s Snapshot) FirstName() string {
	return s.firstName
}

func (s Snapshot) LastName() string {
	return s.lastName
}

// Person is an entity with an undoable rename operation. The name fields are
// only reachable through the method set; the undo stack stays absent until
// the first decorated method call creates it.
//
// A Person is not safe for concurrent use; callers in concurrent settings
// must add their own synchronization.
type Person struct {
	id        uuid.UUID
	firstName string
	lastName  string
	undoStack *stack.Stack[Snapshot] // nil = never initialized, distinct from initialized-but-empty

	// the decorated method table, assembled once in BuildPerson
	rename advice.Method[*Person, *Person]
	undo   advice.Method[*Person, *Person]
}

// BuildPerson is a factory method for Person.
//
// It sets the name fields and assembles the decorated method table: Rename
// and Undo both get the EnsureUndoStack hook; the optional renameHooks run
// on Rename only, after EnsureUndoStack, in the given order.
func BuildPerson(firstName string, lastName string, renameHooks ...advice.Hook[*Person]) *Person {
	p := &Person{
		id:        uuid.New(),
		firstName: firstName,
		lastName:  lastName,
	}

	allRenameHooks := append([]advice.Hook[*Person]{EnsureUndoStack}, renameHooks...)

	p.rename = advice.Apply(advice.Before(allRenameHooks...), renameBody)
	p.undo = advice.Apply(advice.Before(EnsureUndoStack), undoBody)

	return p
}

// EnsureUndoStack is a reusable before-advice hook that guarantees the
// receiver has an undo stack, creating an empty one if absent and leaving an
// existing one, including its contents, untouched. It is idempotent and is
// attached to every method that reads or mutates the stack.
func EnsureUndoStack(p *Person, _ []any) error {
	if p.undoStack == nil {
		p.undoStack = stack.New[Snapshot]()
	}

	return nil
}

// Rename pushes a Snapshot of the current name onto the undo stack, then
// overwrites the name fields. It returns the receiver to enable chaining.
//
// The before-advice hooks run first; if one fails, the rename does not
// happen and the error propagates unmodified.
func (p *Person) Rename(firstName string, lastName string) (*Person, error) {
	return p.rename(p, []any{firstName, lastName})
}

// Undo restores the name fields from the most recent Snapshot, if any.
// Undoing with an empty history is a safe no-op, not an error; calling Undo
// more often than Rename was called leaves the earliest state in place.
// It returns the receiver to enable chaining.
func (p *Person) Undo() (*Person, error) {
	return p.undo(p, nil)
}

// FullName returns the first and last name joined by a single space. It is
// a pure read: no decoration, no side effects, and it does not trigger the
// lazy undo stack initialization.
func (p *Person) FullName() string {
	return p.firstName + " " + p.lastName
}

// ID returns the Person's unique identifier.
func (p *Person) ID() uuid.UUID {
	return p.id
}

// UndoStackInitialized reports whether the lazily created undo stack exists
// yet. It stays false until the first decorated method call and never
// becomes false again afterwards, even when the stack is empty.
func (p *Person) UndoStackInitialized() bool {
	return p.undoStack != nil
}

// UndoDepth reports the number of snapshots available to undo; zero for an
// absent stack.
func (p *Person) UndoDepth() int {
	if p.undoStack == nil {
		return 0
	}

	return p.undoStack.Len()
}

func renameBody(p *Person, args []any) (*Person, error) {
	firstName, _ := args[0].(string)
	lastName, _ := args[1].(string)

	p.undoStack.Push(Snapshot{firstName: p.firstName, lastName: p.lastName})
	p.firstName = firstName
	p.lastName = lastName

	return p, nil
}

func undoBody(p *Person, _ []any) (*Person, error) {
	snapshot, ok := p.undoStack.Pop()
	if !ok {
		return p, nil
	}

	p.firstName = snapshot.firstName
	p.lastName = snapshot.lastName

	return p, nil
}
