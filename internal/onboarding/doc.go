// Package onboarding holds the angler onboarding flow independent of any
// rendering layer.
//
// Each screen owns a draft (ProfileDraft, LocationDraft, AvailabilityDraft)
// that it mutates field by field. Once a draft's completeness predicate
// holds, Submit hands back an immutable snapshot which the screen wraps in
// a typed Event and passes to the Controller. The Controller is the only
// owner of the aggregate Session and moves strictly forward:
//
//	Welcome -> Profile -> Location -> DateTime -> Matching
//
// There is no back navigation and no way to edit a snapshot after it has
// been accepted.
package onboarding
