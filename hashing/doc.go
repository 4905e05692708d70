// Package hashing inspects and produces password hash strings.
//
// # Modular crypt format
//
// [ParseMCF] splits a password hash in the modular crypt format
// ($id$params$salt$hash) into a [Descriptor] and classifies its dialect:
//
//   - $2…$ (2, 2a, 2b, 2x, 2y) → [AlgorithmBcrypt]; the cost is reported as
//     the "rounds" param and the 22-character salt is split off the hash.
//   - $5$ → [AlgorithmSHA256] and $6$ → [AlgorithmSHA512] (crypt(3) SHA-2).
//   - $md5plain$ → [AlgorithmMD5].
//   - anything else that fits the grammar → [AlgorithmUnknown].
//
// Bare hexadecimal digests (md5, sha1, sha256, …) are recognised as
// [AlgorithmHex] together with their length in bytes. Everything else fails
// with [ErrInvalidFormat].
//
//	d, err := hashing.ParseMCF("$5$rounds=80000$wnsT7Yr92oJoP28r$r6gESRx/RBya4a.LFKCFY.r4BT/onHS7Qg9BiSR58.5")
//	// d.Algorithm == "sha256", d.Salt == "wnsT7Yr92oJoP28r"
//	// d.Prefix == "$5$rounds=80000$wnsT7Yr92oJoP28r$"
//	// rounds, _ := d.Rounds() // 80000
//
// # Bcrypt
//
// [BcryptHasher] wraps golang.org/x/crypto/bcrypt. Its Check, NeedsRehash
// and Info methods recognise bcrypt strings through [ParseMCF], so a hash
// from another dialect fails with [ErrAlgorithmMismatch] instead of a
// decoding error. [BcryptSalt] produces a fresh $2y$ salt prefix for
// crypt(3)-style APIs.
//
// # Security defaults
//
//   - bcrypt: cost 12 (≈ 250 ms on modern hardware; exceeds OWASP minimum of 10).
//
// All functions are safe for concurrent use.
package hashing
