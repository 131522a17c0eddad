// Package io reads and writes building spec files.
//
// A building spec can be written as TOML, YAML or JSON. The format is picked
// from the file extension (.toml, .yaml/.yml, .json); all three decode into
// the same [plan.BuildingSpec], so a spec hashes identically whatever format
// it was loaded from.
//
// # TOML
//
// TOML is the format `floorplan example` prints by default:
//
//	name   = "Ground floor plan"
//	width  = 34.0
//	length = 24.0
//	margin = 4.0
//	height = 11.5
//
//	[[rooms]]
//	id     = "left-top"
//	name   = "Room"
//	width  = 11.0
//	length = 12.0
//	column = "left"
//	row    = "top"
//
//	[hall]
//	name   = "Hall"
//	width  = 12.0
//	length = 24.0
//
//	[stair]
//	caption = "Stairs"
//	width   = 6.0
//	length  = 8.0
//	treads  = 8
//
// Decoding is strict in every format: unknown keys are rejected with
// INVALID_INPUT rather than silently ignored, so a misspelled "lenght" does
// not turn into a zero span further down the line.
//
// Reading only decodes. Spans and the partition are checked by the layout
// engine.
package io
