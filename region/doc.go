// Package region ties a selection tree to the outside world.
//
// A Region owns the root registrar of one selectable area and exposes
// the command surface a gesture layer drives: pointer selection, word
// and paragraph selects, handle drags, keyboard extension, select-all,
// clear, and copy. The gesture layer classifies raw input; the region
// only coordinates.
//
// Every command runs one synchronous dispatch pass over the tree and
// ends with a single batched publication of the merged geometry and
// content. Events that cannot be answered before the next layout pass
// are parked and replayed from LayoutChanged, so consumers never see
// stale geometry presented as current.
//
// An interaction (pointer drag, handle drag, keyboard run) is a
// session: its pre-state is snapshotted when it begins, and
// CancelInteraction rolls the whole tree back to it.
package region
