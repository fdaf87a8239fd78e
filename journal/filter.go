package journal

import (
	"slices"
	"time"
)

type FilterSubjectTypeString = string
type FilterSubjectIDString = string
type FilterOperationString = string

/***** Filter *****/

// Filter holds the criteria for querying or pruning journal entries. A zero
// Filter matches every entry. Build it with BuildEntryFilter.
type Filter struct {
	subjectTypes  []FilterSubjectTypeString
	subjectIDs    []FilterSubjectIDString
	operations    []FilterOperationString
	recordedFrom  time.Time
	recordedUntil time.Time
}

func (f Filter) SubjectTypes() []FilterSubjectTypeString {
	return f.subjectTypes
}

func (f Filter) SubjectIDs() []FilterSubjectIDString {
	return f.subjectIDs
}

func (f Filter) Operations() []FilterOperationString {
	return f.operations
}

func (f Filter) RecordedFrom() time.Time {
	return f.recordedFrom
}

func (f Filter) RecordedUntil() time.Time {
	return f.recordedUntil
}

/***** FilterBuilder *****/

// FilterBuilder builds a generic entry filter to be used in DB type-specific
// journal store implementations to build queries for the specific query
// language. Within one criterion the values are combined with OR, the
// criteria themselves are combined with AND:
//
//   - empty filter (matches any entry)
//   - (subjectType OR subjectType...)
//   - (subjectID OR subjectID...)
//   - (operation OR operation...)
//   - recorded-at range (from/until, each optional)
type FilterBuilder interface {
	// Matching starts criteria collection.
	Matching() EntryCriteriaBuilder

	// MatchingAnyEntry directly creates an empty Filter.
	MatchingAnyEntry() Filter
}

type EntryCriteriaBuilder interface {
	// AnySubjectTypeOf adds one or multiple subject types; ANY of them matches.
	//
	// It sanitizes the input:
	//	- removing empty values ("")
	//	- sorting the values
	//	- removing duplicates
	AnySubjectTypeOf(subjectType FilterSubjectTypeString, subjectTypes ...FilterSubjectTypeString) EntryCriteriaBuilder

	// AnySubjectIDOf adds one or multiple subject IDs; ANY of them matches.
	//
	// It sanitizes the input:
	//	- removing empty values ("")
	//	- sorting the values
	//	- removing duplicates
	AnySubjectIDOf(subjectID FilterSubjectIDString, subjectIDs ...FilterSubjectIDString) EntryCriteriaBuilder

	// AnyOperationOf adds one or multiple operation names; ANY of them matches.
	//
	// It sanitizes the input:
	//	- removing empty values ("")
	//	- sorting the values
	//	- removing duplicates
	AnyOperationOf(operation FilterOperationString, operations ...FilterOperationString) EntryCriteriaBuilder

	// RecordedFrom restricts matches to entries recorded at or after the given time.
	RecordedFrom(from time.Time) EntryCriteriaBuilder

	// RecordedUntil restricts matches to entries recorded at or before the given time.
	RecordedUntil(until time.Time) EntryCriteriaBuilder

	// Finalize returns the Filter.
	Finalize() Filter
}

// filterBuilder implements all the interfaces of FilterBuilder.
type filterBuilder struct {
	filter Filter
}

// BuildEntryFilter creates a FilterBuilder which must eventually be finalized
// with Finalize() or MatchingAnyEntry().
func BuildEntryFilter() FilterBuilder {
	return filterBuilder{}
}

// Matching starts criteria collection.
func (fb filterBuilder) Matching() EntryCriteriaBuilder {
	return fb
}

// MatchingAnyEntry directly creates an empty filter.
func (fb filterBuilder) MatchingAnyEntry() Filter {
	return fb.filter
}

func (fb filterBuilder) AnySubjectTypeOf(
	subjectType FilterSubjectTypeString,
	subjectTypes ...FilterSubjectTypeString,
) EntryCriteriaBuilder {

	fb.filter.subjectTypes = append(
		fb.filter.subjectTypes,
		sanitizeFilterValues(subjectType, subjectTypes...)...,
	)

	return fb
}

func (fb filterBuilder) AnySubjectIDOf(
	subjectID FilterSubjectIDString,
	subjectIDs ...FilterSubjectIDString,
) EntryCriteriaBuilder {

	fb.filter.subjectIDs = append(
		fb.filter.subjectIDs,
		sanitizeFilterValues(subjectID, subjectIDs...)...,
	)

	return fb
}

func (fb filterBuilder) AnyOperationOf(
	operation FilterOperationString,
	operations ...FilterOperationString,
) EntryCriteriaBuilder {

	fb.filter.operations = append(
		fb.filter.operations,
		sanitizeFilterValues(operation, operations...)...,
	)

	return fb
}

func (fb filterBuilder) RecordedFrom(from time.Time) EntryCriteriaBuilder {
	fb.filter.recordedFrom = from

	return fb
}

func (fb filterBuilder) RecordedUntil(until time.Time) EntryCriteriaBuilder {
	fb.filter.recordedUntil = until

	return fb
}

// Finalize returns the Filter.
func (fb filterBuilder) Finalize() Filter {
	return fb.filter
}

func sanitizeFilterValues(value string, values ...string) []string {
	allValues := append([]string{value}, values...)
	allValues = slices.DeleteFunc(
		allValues,
		func(v string) bool {
			return v == ""
		})
	slices.Sort(allValues)
	allValues = slices.Compact(allValues)
	allValues = slices.Clip(allValues)

	return allValues
}
