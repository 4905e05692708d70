package hashing_test

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/hasbyte1/go-hooray/hashing"
)

func ExampleParseMCF() {
	d, err := hashing.ParseMCF("$5$rounds=80000$wnsT7Yr92oJoP28r$r6gESRx/RBya4a.LFKCFY.r4BT/onHS7Qg9BiSR58.5")
	if err != nil {
		log.Fatal(err)
	}
	rounds, _ := d.Rounds()
	fmt.Println(d.Algorithm, rounds)
	fmt.Println(d.Salt)
	fmt.Println(d.Prefix)
	// Output:
	// sha256 80000
	// wnsT7Yr92oJoP28r
	// $5$rounds=80000$wnsT7Yr92oJoP28r$
}

// A bare hex digest reports its length.
func ExampleParseMCF_hex() {
	d, _ := hashing.ParseMCF("da39a3ee5e6b4b0d3255bfef95601890afd80709")
	fmt.Println(d.Algorithm, d.Bytes)
	// Output: hex 20
}

// Example_keyRotation shows the NeedsRehash flow on login.
func Example_keyRotation() {
	old, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: bcrypt.MinCost})
	current, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: bcrypt.MinCost + 1})

	stored, _ := old.Make("pw")
	if ok, _ := current.Check("pw", stored); ok {
		needs, _ := current.NeedsRehash(stored)
		fmt.Println("needs rehash:", needs)
	}
	// Output: needs rehash: true
}

func ExampleDetectAlgorithm() {
	for _, h := range []string{"$6$salt$hash", "$2b$04$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", "nope"} {
		alg, ok := hashing.DetectAlgorithm(h)
		fmt.Printf("%q %v\n", alg, ok)
	}
	// Output:
	// "sha512" true
	// "bcrypt" true
	// "" false
}
