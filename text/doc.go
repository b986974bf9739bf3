// Package text provides the small text utilities shared by the builders and
// exporters: Unicode normalisation of recognised words, joining of word and
// line text, and dominant writing direction detection.
//
// # Normalisation
//
// Analysis services return whatever code points the recogniser produced.
// [Normalize] maps text onto one of the Unicode normal forms so that keys in
// a form map compare equal regardless of how accents were encoded:
//
//	key := text.Normalize("Café", text.NFC) // "Café"
//
// # Direction
//
// [DetectDirection] counts strong bidirectional classes and reports the
// dominant one. Exporters use it to mark right-to-left lines.
package text
