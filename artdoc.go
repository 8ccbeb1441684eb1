// Package artdoc turns plain-text articles into illustrated HTML.
// It asks a language model to mark up an article with image placeholders,
// generates one image per placeholder caption, rewrites the placeholders
// to point at the stored images, and can splice the result into a
// template page for preview.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, openai/, gemini/).
package artdoc
