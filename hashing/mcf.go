package hashing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/hasbyte1/go-hooray/str"
)

// Algorithm is the canonical name of a hash dialect.
type Algorithm string

const (
	AlgorithmBcrypt  Algorithm = "bcrypt"
	AlgorithmSHA256  Algorithm = "sha256"
	AlgorithmSHA512  Algorithm = "sha512"
	AlgorithmMD5     Algorithm = "md5"
	AlgorithmUnknown Algorithm = "unknown"
	// AlgorithmHex marks a bare hexadecimal digest; only [Descriptor.Bytes]
	// is set alongside it.
	AlgorithmHex Algorithm = "hex"
)

// Descriptor describes a parsed hash string.
type Descriptor struct {
	// Identifier is the raw text between the first two '$'.
	Identifier string    `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Algorithm  Algorithm `json:"algorithm" yaml:"algorithm"`
	Salt       string    `json:"salt,omitempty" yaml:"salt,omitempty"`
	Hash       string    `json:"hash,omitempty" yaml:"hash,omitempty"`
	// Format is the non-secret part that configures the algorithm: the
	// identifier plus params. Empty for unknown dialects.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	Params Params `json:"params,omitempty" yaml:"params,omitempty"`
	// Prefix is everything but the bare hash. For unknown dialects it is the
	// whole input.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	// Bytes is the digest length of an [AlgorithmHex] string.
	Bytes int `json:"bytes,omitempty" yaml:"bytes,omitempty"`
}

// Rounds returns the "rounds" param as an integer. Bcrypt descriptors always
// carry it; SHA-2 crypt strings only when the rounds were spelled out.
func (d Descriptor) Rounds() (int, bool) {
	v, ok := d.Params.Get("rounds")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

const bcryptSaltLen = 22

var (
	mcfPattern = regexp.MustCompile(`^\$(?P<id>[^$]+)` +
		`(?:\$(?P<params>[^=,$]+=[^=,$]+(?:,[^=,$]+=[^=,$]+)*))?` +
		`(?:\$(?P<salt>[^$]+))?` +
		`\$(?P<hash>[^$]+)$`)
	mcfParam   = regexp.MustCompile(`,(?P<key>[^=,$]+)=(?P<val>[^=,$]+)`)
	hexPattern = regexp.MustCompile(`(?i)^(?:[0-9a-f]{2})+$`)

	mcfID     = mcfPattern.SubexpIndex("id")
	mcfParams = mcfPattern.SubexpIndex("params")
	mcfSalt   = mcfPattern.SubexpIndex("salt")
	mcfHash   = mcfPattern.SubexpIndex("hash")
)

// mcfMatch holds the raw segments of a modular crypt string.
type mcfMatch struct {
	id, params, salt, hash string
}

func matchMCF(input string) (mcfMatch, bool) {
	m := str.Match(input, mcfPattern, 0)
	if m == nil {
		return mcfMatch{}, false
	}
	return mcfMatch{id: m[mcfID], params: m[mcfParams], salt: m[mcfSalt], hash: m[mcfHash]}, true
}

// ParseMCF parses a password hash in the modular crypt format, or a bare hex
// digest, into a [Descriptor]. It fails with [ErrInvalidFormat] when input
// is neither.
func ParseMCF(input string) (Descriptor, error) {
	m, ok := matchMCF(input)
	if !ok {
		if hexPattern.MatchString(input) {
			return Descriptor{Algorithm: AlgorithmHex, Bytes: len(input) / 2}, nil
		}
		return Descriptor{}, fmt.Errorf("%w: expected $id$[params$][salt$]hash or a hex digest", ErrInvalidFormat)
	}

	d := Descriptor{Identifier: m.id, Salt: m.salt, Hash: m.hash, Algorithm: AlgorithmUnknown}
	if m.params != "" {
		str.Loop(","+m.params, mcfParam, func(pair []string) {
			d.Params.set(pair[1], pair[2])
		})
	}

	switch {
	case strings.HasPrefix(m.id, "2"):
		// The salt segment of a bcrypt string is its cost; the real salt
		// leads the hash segment.
		rounds := leadingInt(m.salt)
		d.Algorithm = AlgorithmBcrypt
		d.Params.set("rounds", strconv.Itoa(rounds))
		n := min(bcryptSaltLen, len(m.hash))
		d.Salt, d.Hash = m.hash[:n], m.hash[n:]
		d.Format = fmt.Sprintf("$%s$%02d$", m.id, rounds)
		d.Prefix = d.Format + d.Salt
	case m.id == "5" || m.id == "6":
		d.Algorithm = AlgorithmSHA256
		if m.id == "6" {
			d.Algorithm = AlgorithmSHA512
		}
		d.Format = "$" + m.id
		if m.params != "" {
			d.Format += "$" + m.params + "$"
			d.Prefix = d.Format + d.Salt + "$"
		} else {
			d.Prefix = d.Format + "$" + d.Salt + "$"
		}
	case m.id == "md5plain":
		d.Algorithm = AlgorithmMD5
		d.Format = "$md5plain$"
		d.Prefix = d.Format
	default:
		d.Prefix = input
	}
	return d, nil
}

// DetectAlgorithm reports the dialect of hash. It returns false for strings
// ParseMCF rejects and for unknown dialects.
func DetectAlgorithm(hash string) (Algorithm, bool) {
	d, err := ParseMCF(hash)
	if err != nil || d.Algorithm == AlgorithmUnknown {
		return "", false
	}
	return d.Algorithm, true
}

// leadingInt parses the optionally signed decimal number at the start of s,
// ignoring leading white space and anything after the digits. It returns 0
// when there is no number.
func leadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
