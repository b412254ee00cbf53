// Package mdhtml converts a restricted Markdown dialect to an HTML fragment.
//
// Conversion runs in two stages over a flat token stream. Parse scans the
// source line by line into block tokens; every text bearing block carries
// its inline tokens (strong, emphasis, strikethrough) as Children. Render
// walks the stream and emits HTML with the fixed inline styles used for
// previews and exports.
//
// Supported blocks: ATX headings, single item bullet lists, grouped and
// renumbered ordered lists, fenced code, nested blockquotes, thematic
// breaks, pipe tables with alignment and paragraphs. Everything else is a
// paragraph.
//
// Example:
//
//	tokens := mdhtml.Parse("# Hello\n\nMarkdown **in**, HTML out.")
//	fmt.Println(mdhtml.Render(tokens))
//	// <h1>Hello</h1><p>Markdown <strong>in</strong>, HTML out.</p>
//
// Text is not escaped unless WithEscapeHTML is given. The same token stream
// can be previewed on a terminal with RenderTerminal, and the export
// package wraps a fragment into a standalone document.
package mdhtml
