// Package extract holds the page content extraction pipelines: the DOM
// snapshot extractor and the markdown renderer. Both are pure functions
// over a browseruse.Tree; live-environment concerns (computed style,
// geometry) enter only through the oracle interfaces defined in the root
// package.
package extract
