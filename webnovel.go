// Package webnovel downloads serialized fiction from syosetu.com and
// assembles it into a single intermediate document suitable for
// conversion into an e-reader package. It extracts structured book
// content (title, author, volume/chapter hierarchy, paragraph text)
// from raw markup and applies the typographic normalization required by
// vertical Japanese text.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or concern
// (e.g., regexp/, http/, pandoc/).
package webnovel
