package jcs

import "testing"

func TestCanonicalize(t *testing.T) {
	in := []byte(`{ "b":2, "a":1 }`)
	want := `{"a":1,"b":2}`
	out, err := Canonicalize(in)
	if err != nil {
		t.Fatalf("canonicalize error: %v", err)
	}
	if string(out) != want {
		t.Fatalf("unexpected canonical form: %s", string(out))
	}
}

func TestDigestStable(t *testing.T) {
	a := []byte(`{"a":1,"b":2}`)
	b := []byte(`{ "b":2, "a":1 }`)

	da, err := Digest(a)
	if err != nil {
		t.Fatalf("digest error: %v", err)
	}
	db, err := Digest(b)
	if err != nil {
		t.Fatalf("digest error: %v", err)
	}
	if da != db {
		t.Fatal("expected same digest for equivalent JSON")
	}
	if len(da) != 64 {
		t.Fatalf("expected hex sha-256, got %q", da)
	}
}

func TestDigestSensitivity(t *testing.T) {
	da, err := Digest([]byte(`{"accounts":[{"account_id":"1"}]}`))
	if err != nil {
		t.Fatalf("digest error: %v", err)
	}
	db, err := Digest([]byte(`{"accounts":[{"account_id":"2"}]}`))
	if err != nil {
		t.Fatalf("digest error: %v", err)
	}
	if da == db {
		t.Fatal("expected digests to differ for different content")
	}
}

func TestCanonicalizeInvalid(t *testing.T) {
	if _, err := Canonicalize([]byte(`{`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if _, err := Digest([]byte(`{`)); err == nil {
		t.Fatal("expected error for invalid JSON digest")
	}
}
