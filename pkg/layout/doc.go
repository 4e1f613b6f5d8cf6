// Package layout plans where report content lands on pages.
//
// The package has two halves. The text flow planner turns raw text into
// positioned line commands, wrapping against the font metrics and starting
// new pages whenever the current one runs out of vertical space. The image
// placement resolver takes the cursor the planner ends on and decides where
// a scaled raster image fits.
//
// Coordinates follow the PDF convention: origin at the bottom-left of the
// page, y increasing upward, all values in points. The cursor's y is always
// the position the next line of text would occupy.
//
// Planning is pure computation. Nothing here touches the document writer;
// the render driver consumes the resulting Plan and issues draw calls.
package layout
