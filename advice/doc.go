// Package advice provides a combinator for attaching "before advice" to
// methods: an ordered list of hook functions that run immediately prior to
// a method's original body, with the same receiver and arguments, without
// modifying the method's source.
//
// # Core Principle: External Decoration
//
// Advice is applied externally at wiring time, when an object's method table
// is assembled, not hidden inside the methods themselves. This keeps the
// original bodies pure and makes the composition explicit and transparent.
//
// # Usage
//
// Basic pattern for decorating a method:
//
//	// 1. Build an Advice from an ordered list of hooks
//	adv := advice.Before(ensureUndoStack, journalChanges)
//
//	// 2. Apply it to the original method body
//	decorated := advice.Apply(adv, renameBody)
//
//	// 3. Invoke the decorated method; hooks run first, in order
//	result, err := decorated(receiver, []any{"Ada", "Lovelace"})
//
// # Stacking
//
// Multiple advices can be stacked on one method with Chain; the outermost
// decorator's hooks run before inner ones, and inner hooks run before the
// original body:
//
//	decorated := advice.Chain(
//		renameBody,
//		advice.Decorate[*Person, *Person](outer),
//		advice.Decorate[*Person, *Person](inner),
//	)
//
// # Contract
//
//   - Hooks observe the same receiver and argument list as the original body;
//     their return values never influence the decorated method's result.
//   - A hook error aborts the remaining hooks and the original body and
//     propagates to the caller unmodified (fail-fast, no suppression).
//   - An empty Advice decorates to a plain passthrough.
//   - Execution is strictly sequential within one call; the package adds no
//     synchronization of its own.
package advice
