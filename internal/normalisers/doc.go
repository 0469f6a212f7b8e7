// Package normalisers holds the format-specific content extractors.
// Each subpackage turns one input format into typed content items;
// pdf is currently the only supported format.
package normalisers
