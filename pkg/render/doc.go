// Package render turns layout plans into serialized documents.
//
// # Overview
//
// The package separates WHAT gets drawn from HOW it is drawn:
//
//   - [Writer] is the document backend contract: pages, one embedded font,
//     text and image draw calls, and a single final serialization.
//   - [Driver] walks a layout plan and issues Writer calls in order.
//
// The production Writer is the PDF backend in the [sink] subpackage; tests
// substitute recording fakes.
//
// # Coordinates
//
// All positions use the document coordinate system: origin at the
// bottom-left of the page, y increasing upward, lengths in points. Backends
// that natively use a top-left origin convert internally.
//
// # Lifecycle
//
// A Driver renders exactly one plan. Rendering is all-or-nothing: any
// backend failure aborts with an error and no document bytes are produced.
package render
