package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	envelopes := []Envelope{
		{Data: []ContentItem{}, TotalPages: 0},
		{Data: []ContentItem{{ID: "1", Name: "a", Category: "asmr", PostDate: "2024-01-15", Slug: "a-1"}}, TotalPages: 3},
		{
			Data: []ContentItem{
				{ID: "9", Name: "with links", Category: "cosplay", Slug: "w-9", Thumbnail: "https://img/x.jpg",
					Mega: "https://mega/a", Pixeldrain: "https://pd/a", Gofile: "https://gf/a",
					MegaMirror: "https://mega/b", PixeldrainMirror: "https://pd/b", GofileMirror: "https://gf/b"},
				{ID: "10", Name: "unicode ✓ name", Category: "café", Slug: "u-10"},
			},
			TotalPages: 42,
		},
	}

	for _, env := range envelopes {
		encoded, err := Encode(env)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(Encode(env)) failed: %v", err)
		}
		if !reflect.DeepEqual(decoded, env) {
			t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, env)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	valid, err := Encode(Envelope{TotalPages: 1})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"one char", "e"},
		{"two chars", "ey"},
		{"invalid base64 after repair", "ab!!!###not-base64"},
		{"valid base64 but not json", "aGxVsbG8="}, // repairs to base64("hello")
		{"truncated payload", valid[:len(valid)/2] + "="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrDecode) {
				t.Errorf("error %v does not match ErrDecode", err)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Errorf("error %T is not a *DecodeError", err)
			}
		})
	}
}

func TestDecodeIgnoresScrambleValue(t *testing.T) {
	env := Envelope{Data: []ContentItem{{ID: "1", Slug: "s"}}, TotalPages: 2}
	encoded, err := Encode(env)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Only the position of the junk character matters, not its value.
	mutated := encoded[:2] + "Q" + encoded[3:]
	decoded, err := Decode(mutated)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, env) {
		t.Errorf("got %+v, want %+v", decoded, env)
	}
}

func TestDecodeNilDataBecomesEmptySlice(t *testing.T) {
	// {"data":null,"totalPages":1} is a well-formed envelope on the wire.
	encoded, err := Encode(Envelope{TotalPages: 1})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	env, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if env.Data == nil {
		t.Error("Data should be an empty slice, not nil")
	}
	if len(env.Data) != 0 || env.TotalPages != 1 {
		t.Errorf("unexpected envelope: %+v", env)
	}
}
