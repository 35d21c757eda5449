// Package decimal provides an arbitrary precision base 10 number.
//
// The equation for a decimal number is:
//
//	number = magnitude * 10 ^ -scale
//
// Where magnitude is an unscaled integer of any size and scale is a signed
// 32 bit count of digits after the decimal point. For example:
//
//	1.23 = 123 * 10^-2 (magnitude 123, scale 2)
//
// A negative scale multiplies: magnitude 5 with scale -2 is 500.
//
// Values are immutable. Two decimals are Equal only when both magnitude and
// scale match, so 1.0 and 1.00 are different values that Cmp reports as the
// same number.
//
// # Bytes
//
// Bytes lays a decimal out as the magnitude in minimal little-endian two's
// complement followed by the scale as a little-endian int32:
//
//	| magnitude (n bytes, LE two's complement) | scale (4 bytes, LE) |
//
// For example:
//
//	  0 (scale 0)    00 00 00 00 00
//	1.27 (scale 2)   7f 02 00 00 00
//	1.28 (scale 2)   80 00 02 00 00 00
//	 -1 (scale 0)    ff 00 00 00 00
//	-1.29 (scale 2)  7f ff 02 00 00 00
//
// FromBytes accepts an empty magnitude (only the 4 scale bytes) as zero.
//
// # Streams
//
// Encoder and Decoder carry decimals as BSV data fields (see the control
// package). Each field is the magnitude with a trailing sign bit (see the
// integer package) followed by a scale trailer. The last two bits of the
// field give the trailer size:
//
//	| 6 | 7 | Trailer                                        |
//	|-------|------------------------------------------------|
//	| 0 . 0 | 1 byte, scale 0                                |
//	| 0 . 1 | 1 byte, scale in the upper 6 bits (±2^5)       |
//	| 1 . 0 | 2 bytes, scale in the upper 14 bits (±2^13)    |
//	| 1 . 1 | 3 bytes, scale in the upper 22 bits (±2^21)    |
//	|-------|------------------------------------------------|
//
// The scale in the trailer also carries a trailing sign bit. Null fields
// stand for a missing decimal when the schema is nullable. Empty fields are
// never written and are rejected by the decoder.
//
// USD 0.0001 (2 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|-----------|-------------------|
//	| 0 . 0 . 1 | 0 . 0 . 0 . 1 | 0 | Data + 1 Control Block with magnitude +1.
//	|-------------------------------|
//	| 0 . 0 . 1 . 0 . 0 . 0 | 0 . 1 | Scale of +4.
//	|-----------------------|-------|
//
// Ethereum 1 Wei (2 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|-----------|-------------------|
//	| 0 . 0 . 1 | 0 . 0 . 0 . 1 | 0 | Data + 1 Control Block with magnitude +1.
//	|-------------------------------|
//	| 1 . 0 . 0 . 1 . 0 . 0 | 0 . 1 | Scale of +18.
//	|-----------------------|-------|
//
// # Narrowing
//
// Conversions to Go numbers go through fixed.Value, a 96 bit fixed point
// number with at most 28 fractional digits. Integer targets round half to
// even and fail with OverflowError when out of range.
package decimal
