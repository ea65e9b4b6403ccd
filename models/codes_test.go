package models

import (
	"regexp"
	"testing"
)

func TestGenerateRoomCode_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^[ABCDEFGHJKMNPQRSTUVWXYZ23456789]{6}$`)

	for i := 0; i < 100; i++ {
		code, err := GenerateRoomCode()
		if err != nil {
			t.Fatalf("GenerateRoomCode() error: %v", err)
		}
		if !pattern.MatchString(code) {
			t.Errorf("GenerateRoomCode() = %q, doesn't match expected pattern", code)
		}
	}
}

func TestGenerateRoomCode_NoAmbiguousChars(t *testing.T) {
	ambiguous := "0OIL1"
	for i := 0; i < 100; i++ {
		code, err := GenerateRoomCode()
		if err != nil {
			t.Fatal(err)
		}
		for _, ch := range code {
			for _, a := range ambiguous {
				if ch == a {
					t.Errorf("code %q contains ambiguous character %c", code, ch)
				}
			}
		}
	}
}

func TestGenerateRoomCode_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	dupes := 0
	for i := 0; i < 1000; i++ {
		code, err := GenerateRoomCode()
		if err != nil {
			t.Fatal(err)
		}
		if seen[code] {
			dupes++
		}
		seen[code] = true
	}
	// 31^6 combinations; 1000 samples should have essentially no dupes
	if dupes > 2 {
		t.Errorf("too many duplicate codes: %d out of 1000", dupes)
	}
}
