// Package pix encodes and decodes the Brazilian instant-payment ("PIX")
// BR Code payload: the tag-length-value string carried inside payment QR
// codes, terminated by a CRC-16/CCITT-FALSE checksum.
//
// The package is a pure codec. It builds the canonical field tree for a
// merchant presentment (CreatePayment), serializes it to the wire string
// (Encode), parses a wire string back into an annotated field tree
// (Decode), and classifies PIX keys by syntactic type (ValidateKey).
// Rendering the string as a QR image, transport, and persistence are all
// left to the caller.
//
// Every operation is a pure function of its arguments; all functions are
// safe for concurrent use from independent call sites.
package pix
