// Package docgen generates the options reference page of a charting library.
//
// [Generator.Generate] runs a fixed pipeline over files in an [fs.FS]:
//
//  1. Load the catalogue block from the catalogue source file
//     ([catalogue.Loader]).
//  2. Scan the test files, then the gallery files, for option occurrences
//     ([scan.Scanner.CrossReference]). File lists come from glob patterns
//     evaluated with [fs.Glob]; a pattern matching nothing is not an error.
//  3. Build the label index ([catalogue.Catalogue.Labels]).
//  4. Render the page ([render.Renderer]).
//
// The page is written to the output only once every step has succeeded.
//
// # Debug Mode
//
// [WithDebugFiles] restricts scanning to the listed files and replaces the
// page with a trace of each file's braced text and candidate names. The run
// stops after the scan phase. Use it to find out why a file is or is not
// listed as an example of an option.
//
// # Watch Mode
//
// A [Watcher] keeps a page file up to date while its inputs are edited. It
// generates the page, then regenerates it shortly after files under the
// root directory stop changing. A failed run is logged and the previous
// page stays in place.
//
// # CLI Integration
//
// [Config] bridges CLI flags to the library, following the RegisterFlags /
// RegisterCompletions / NewGenerator pattern.
//
//	cfg := docgen.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//	_ = cfg.RegisterCompletions(rootCmd)
//
//	gen, err := cfg.NewGenerator()
//	err = gen.Generate(os.Stdout)
package docgen
