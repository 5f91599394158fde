// Package selectable defines the contract between a selection region and
// the units of content that participate in it.
//
// A selectable unit is anything that can hold a local selection range,
// answer typed selection events, and report its selected geometry and
// plain text. Paragraphs of text are the common case; composite
// registrars and embedded non-text widgets implement the same contract.
//
// # Events
//
// Selection events form a closed set. Each event is a small value type
// and dispatch is expected to switch exhaustively over them:
//
//	EdgeUpdate        move the start or end edge to a screen position
//	SelectWord        select the word at a screen position
//	SelectParagraph   select the paragraph at a screen position
//	GranularExtend    extend by character/word/line/document
//	DirectionalExtend extend to the previous or next visual line
//	SelectAll         select the unit's entire content
//	Clear             drop the unit's selection
//
// # Results
//
// A unit answers every event with a Result. ResultEnd means the event was
// fully consumed. ResultPrevious and ResultNext mean the event's target
// lies before or after the unit in screen order and the enclosing
// registrar should continue with the neighboring unit. ResultPending
// means the unit's layout is not ready and the event must be retried
// after the next layout pass.
package selectable
