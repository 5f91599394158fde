// Package registrar composes selectable units into a tree mirroring the
// visual containment hierarchy and routes selection events through it.
//
// A Registrar is itself a selectable unit, so registrars nest: a
// registrar's geometry is the union of its children's selection shapes
// and its content is their screen-order concatenation. Events reach
// leaf units only through their registrar.
//
// Units are stored in an arena addressed by stable handles. Registering
// or unregistering while a dispatch is in progress is deferred and
// applied when the dispatch returns, so tree mutation can never corrupt
// a traversal.
//
// Routing follows screen order, not registration order: units are
// visited top-to-bottom, then left-to-right within a visual row. Point
// events go to the unit under the point (topmost in paint order wins)
// and then walk outward as units report that the target lies beyond
// them; scope-wide events visit every unit in screen order.
package registrar
