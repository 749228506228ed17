// Package pipeline implements the markdown salvage pipeline.
//
// This package handles the text-reconstruction stages applied to markdown
// produced by a generic HTML-to-markdown conversion:
//   - Code block reconstruction (re-fencing indentation-flattened code)
//   - Language guessing for reconstructed blocks
//   - Post-pass cleanup (residual <pre><code> spans, duplicated navigation
//     boilerplate, inline-code normalization)
//   - HTML preview rendering via Goldmark
//
// Page fetching and HTML-to-markdown conversion are handled by the root
// web2md package. This separation keeps the pipeline focused on pure
// string-to-string transformations, while the root package owns the
// browser and converter collaborators.
package pipeline
