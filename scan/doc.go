// Package scan discovers which example files use which catalogue options.
//
// Detection is textual and deliberately approximate. For each file, only the
// text inside {...} regions is considered (see [ExtractBraced]), and within
// it every run of ASCII letters and digits followed by optional spaces and a
// colon is a candidate option name (see [Candidates]). A candidate that
// names a catalogue option records the file as an example of it; all other
// candidates are ignored. Gallery files are first truncated to the text
// starting at the first "function(", which skips markup attributes that
// precede the demo's registration call.
//
// There is no awareness of strings, comments or escapes, so a literal "{"
// inside a string will shift the region boundaries. That behavior is part of
// the contract.
package scan
