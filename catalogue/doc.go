// Package catalogue loads the options catalogue that documents a charting
// library's configuration options.
//
// The catalogue is a mapping from option name to [Option], embedded as a
// structured-data block inside a larger source file. The block is delimited
// by a line containing an open marker and a line containing a close marker
// (by default "<JSON>" and "</JSON>"); neither marker line is part of the
// block:
//
//	Dygraph.OPTIONS_REFERENCE =  // <JSON>
//	{
//	  "title": {
//	    "labels": ["Chart labels"],
//	    "type": "string",
//	    "default": "null",
//	    "description": "Text to display above the chart."
//	  }
//	}
//	;  // </JSON>
//
// The block is decoded as YAML, so both JSON and YAML catalogues are
// accepted, and is validated against [Schema] before any [Option] is built.
// A missing block, a decode failure or a schema violation all wrap
// [ErrInvalidCatalogue]; no partial catalogue is ever returned.
//
// Each [Option] also accumulates the example files that use it, one list per
// [Category]. Lists start empty and are filled by [Option.AddExample], which
// never records the same path twice.
package catalogue
