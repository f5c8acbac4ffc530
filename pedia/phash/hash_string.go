package phash

import (
	"fmt"
	"hash/crc32"
)

// Checksum computes the CRC-32/IEEE checksum over the UTF-8 bytes of s.
// The game hashes prefab names with the same variant that zip and deflate
// tooling use, so the value is a protocol-level identifier and has to match
// bit-for-bit.
func Checksum(s string) uint32 {
	return crc32.ChecksumIEEE([]byte(s))
}

// HashString reinterprets the checksum of s as a signed 32-bit integer,
// which is how scripts and the logic system carry prefab hashes.
func HashString(s string) int32 {
	return int32(Checksum(s))
}

// HexString renders an unsigned checksum the way the reference sheet prints
// it: lowercase digits, "0x" prefix, no zero padding.
func HexString(value uint32) string {
	return fmt.Sprintf("0x%x", value)
}
