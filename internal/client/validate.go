package client

import "regexp"

// Identifiers are checked before any request is issued; no request is ever
// sent with an unvalidated address or hash.
var (
	addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	hashPattern    = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// ValidAddress reports whether s is a strict 20-byte hex address.
func ValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// ValidHash reports whether s is a strict 32-byte hex hash.
func ValidHash(s string) bool {
	return hashPattern.MatchString(s)
}

func requireAddress(addr string) error {
	if !ValidAddress(addr) {
		return invalidf("", "invalid address: %q", addr)
	}
	return nil
}

func requireHash(hash string) error {
	if !ValidHash(hash) {
		return invalidf("", "invalid transaction hash: %q", hash)
	}
	return nil
}

func requireBlock(block int64) error {
	if block < 0 {
		return invalidf("", "invalid block number: %d", block)
	}
	return nil
}
