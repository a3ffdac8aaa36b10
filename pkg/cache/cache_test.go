package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete and Clear do nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	if err := c.Clear(ctx); err != nil {
		t.Errorf("Clear error: %v", err)
	}

	stats, err := c.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if stats.Entries != 0 || stats.Bytes != 0 {
		t.Errorf("NullCache stats should be empty: %+v", stats)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get before Set should miss")
	}

	// Roundtrip
	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get after Set should hit")
	}
	if string(data) != "value" {
		t.Errorf("Get = %q, want %q", data, "value")
	}

	// Stats sees the entry
	stats, err := c.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if stats.Entries != 1 {
		t.Errorf("Stats.Entries = %d, want 1", stats.Entries)
	}
	if stats.Bytes == 0 {
		t.Error("Stats.Bytes should be nonzero")
	}

	// Delete removes it
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("Get after Delete should miss")
	}

	// Deleting an absent key is fine
	if err := c.Delete(ctx, "absent"); err != nil {
		t.Errorf("Delete absent key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// An already-expired entry reads as a miss.
	if err := c.Set(ctx, "key", []byte("value"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should miss")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	for _, key := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, key, []byte("data"), 0); err != nil {
			t.Fatalf("Set error: %v", err)
		}
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}

	stats, err := c.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if stats.Entries != 0 {
		t.Errorf("Stats.Entries after Clear = %d, want 0", stats.Entries)
	}

	// The cache keeps working after Clear.
	if err := c.Set(ctx, "again", []byte("data"), 0); err != nil {
		t.Fatalf("Set after Clear error: %v", err)
	}
	_, hit, _ := c.Get(ctx, "again")
	if !hit {
		t.Error("Get after Clear+Set should hit")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// TexKey should include options in hash
	tk1 := k.TexKey("hash123", TexKeyOpts{Standalone: true})
	tk2 := k.TexKey("hash123", TexKeyOpts{Standalone: false})
	if tk1 == tk2 {
		t.Error("Different TexKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(tk1, "tex:") {
		t.Errorf("TexKey should use the tex prefix: %s", tk1)
	}

	// PDFKey
	pk1 := k.PDFKey("hash123", PDFKeyOpts{Engine: "latexmk"})
	pk2 := k.PDFKey("hash123", PDFKeyOpts{Engine: "pdflatex"})
	if pk1 == pk2 {
		t.Error("Different PDFKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(pk1, "pdf:") {
		t.Errorf("PDFKey should use the pdf prefix: %s", pk1)
	}

	// PNGKey
	nk1 := k.PNGKey("hash123", PNGKeyOpts{DPI: 300, Crop: true})
	nk2 := k.PNGKey("hash123", PNGKeyOpts{DPI: 600, Crop: true})
	if nk1 == nk2 {
		t.Error("Different PNGKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(nk1, "png:") {
		t.Errorf("PNGKey should use the png prefix: %s", nk1)
	}

	// Same inputs produce the same key
	if k.TexKey("hash123", TexKeyOpts{Standalone: true}) != tk1 {
		t.Error("Keyer should be deterministic")
	}

	// Different input hashes produce different keys
	if k.PDFKey("other", PDFKeyOpts{Engine: "latexmk"}) == pk1 {
		t.Error("Different input hashes should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "paper:")

	// All keys should be prefixed
	tk := scoped.TexKey("hash123", TexKeyOpts{})
	if !strings.HasPrefix(tk, "paper:tex:") {
		t.Errorf("ScopedKeyer TexKey should be prefixed: %s", tk)
	}

	pk := scoped.PDFKey("hash123", PDFKeyOpts{})
	if !strings.HasPrefix(pk, "paper:pdf:") {
		t.Errorf("ScopedKeyer PDFKey should be prefixed: %s", pk)
	}

	nk := scoped.PNGKey("hash123", PNGKeyOpts{})
	if !strings.HasPrefix(nk, "paper:png:") {
		t.Errorf("ScopedKeyer PNGKey should be prefixed: %s", nk)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.TexKey("hash", TexKeyOpts{})
	if !strings.HasPrefix(key, "prefix:tex:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	// Non-nil error is wrapped
	err := Retryable(ErrUnavailable)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}

	// Error message is preserved
	if err.Error() != ErrUnavailable.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	// Non-wrapped errors are not retryable
	if IsRetryable(ErrUnavailable) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrUnavailable
	})
	if err != ErrUnavailable {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrUnavailable)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrUnavailable)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
