//go:build cgo && !windows

package ffiguard

import "testing"

func TestDecodeBounded(t *testing.T) {
	defer resetConfigForTest()

	Init(Config{MaxDecodeBytes: 5})

	p := EncodeString("hello world")
	defer FreeString(p)

	got, err := DecodeString(p)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "hello" {
		t.Fatalf("bounded decode mismatch: got %q", got)
	}
}
