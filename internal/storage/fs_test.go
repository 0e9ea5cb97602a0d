package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestContentKey(t *testing.T) {
	key := ContentKey([]byte("hello"))
	// SHA-256 of "hello".
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if key != want {
		t.Errorf("got %s, want %s", key, want)
	}
	if ContentKey([]byte("hello")) != key {
		t.Error("keys must be deterministic")
	}
	if ContentKey([]byte("hello!")) == key {
		t.Error("different content, different key")
	}
}

func TestFSStoreRoundtrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	content := []byte("contract pdf bytes")
	key := ContentKey(content)

	if err := store.Put(ctx, key, bytes.NewReader(content), int64(len(content)), "application/pdf"); err != nil {
		t.Fatalf("put: %v", err)
	}

	rc, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("got %q, want %q", got, content)
	}
}

func TestFSStorePutIdempotent(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	content := []byte("same bytes")
	key := ContentKey(content)

	if err := store.Put(ctx, key, bytes.NewReader(content), int64(len(content)), "text/plain"); err != nil {
		t.Fatalf("first put: %v", err)
	}
	// The second put must not disturb the stored blob even if its reader
	// yields something else (content-addressed keys make that a caller bug).
	if err := store.Put(ctx, key, strings.NewReader("ignored"), 7, "text/plain"); err != nil {
		t.Fatalf("second put: %v", err)
	}

	rc, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if !bytes.Equal(got, content) {
		t.Errorf("second put overwrote the blob: %q", got)
	}
}

func TestFSStoreOpenMissing(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Open(context.Background(), "0000missing"); err == nil {
		t.Error("opening a missing blob should fail")
	}
}
