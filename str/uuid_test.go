package str_test

import (
	"regexp"
	"testing"

	"github.com/hasbyte1/go-hooray/str"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestUUIDv4(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 16; i++ {
		u, err := str.UUIDv4()
		if err != nil {
			t.Fatal(err)
		}
		if !uuidV4.MatchString(u) {
			t.Fatalf("UUIDv4 %q is not a version 4 UUID", u)
		}
		if seen[u] {
			t.Fatalf("duplicate UUID %q", u)
		}
		seen[u] = true
	}
}

func TestUUIDv4Bytes(t *testing.T) {
	b, err := str.UUIDv4Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if b[6]>>4 != 4 {
		t.Fatalf("version nibble = %x; want 4", b[6]>>4)
	}
	if b[8]&0xC0 != 0x80 {
		t.Fatalf("variant bits = %x; want 10xxxxxx", b[8])
	}
}
