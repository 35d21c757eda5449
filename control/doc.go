// Package control provides the BSV data framing used by the stream codecs.
//
// BSV control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte of each block is
// shown.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                            |
//  |---------------|---------------||----------------|--------------------------------------------|
//  | 1 |                           || Data           | 2^7 = 128 values                           |
//  | 0 . 1 |                       || Data Size      | up to 64 bytes                             |
//  | 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 8192 values                      |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 1048576 values                 |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | up to 8 size bytes; sizes up to 2^64 bytes |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | Empty value                                |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value (for nullable fields)           |
//  |---------------|---------------||----------------|--------------------------------------------|
//
// All sizes are indexed starting at 1 to maximize their effective range. To
// encode zero length data use the Empty block.
//
// Data blocks hold 7 bits of data directly in the control byte.
//
// Data Size blocks hold the data length minus one in the lower 6 bits and
// are followed by the data.
//
// Data + 1 and Data + 2 blocks are two and three byte sequences. The lower
// bits of the control byte are the most significant bits of the data.
//
// Data Size Size blocks have 3 parts:
//
//  1. Number of bytes for the data size (minus one, lower 3 bits)
//  2. Data size (minus one, big-endian)
//  3. Data
//
// The remaining prefixes (0b0000_001x and 0b0000_01xx) are reserved for
// containers and skips and are rejected by the decoder.
package control
