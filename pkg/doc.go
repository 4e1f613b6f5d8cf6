// Package pkg provides the core libraries for leafreport plant-analysis reports.
//
// # Overview
//
// Leafreport turns free-form plant analysis text, plus an optional photo of
// the analyzed leaf, into a paginated PDF document. The pkg directory is
// organized by stage:
//
//  1. [layout] - Pure planning (word wrap, pagination, image placement)
//  2. [render] - Plan execution against a document backend
//  3. [report] - Request orchestration (validate → plan → render)
//  4. [inference] - Vision model clients producing the analysis text
//  5. [storage] - Ephemeral report file storage
//  6. [errors], [fonts], [observability], [buildinfo] - Shared support
//
// # Architecture
//
// The typical data flow through leafreport:
//
//	Analysis text + leaf photo
//	         ↓
//	    [layout] package (wrap, paginate, place image)
//	         ↓
//	    [render] package (draw the plan into a PDF)
//	         ↓
//	    [report] package (filename, stats, hand-off)
//	         ↓
//	    plant_analysis_report_<timestamp>.pdf
//
// Planning never touches a document writer, so invalid requests are
// rejected before any output bytes exist.
package pkg
