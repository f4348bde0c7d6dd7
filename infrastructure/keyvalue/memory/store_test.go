package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"memoria-app-api/core/interfaces"
)

func TestStore_SetAndGet(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get = %q, want %q", got, "v")
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	store := NewStore()

	_, err := store.Get(context.Background(), "missing")
	if err == nil {
		t.Fatal("Get succeeded for a missing key")
	}
	if !errors.Is(err, interfaces.ErrKeyNotFound) {
		t.Errorf("Get error = %v, want ErrKeyNotFound", err)
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if _, err := store.Get(ctx, "k"); err != nil {
		t.Errorf("Get returned error for a zero-TTL key: %v", err)
	}
}

func TestStore_ExpiredKeyIsGone(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := store.Get(ctx, "k"); err == nil {
		t.Error("Get succeeded for an expired key")
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_ = store.Set(ctx, "k", []byte("v"), 0)
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := store.Get(ctx, "k"); err == nil {
		t.Error("Get succeeded after Delete")
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_ = store.Set(ctx, "k", []byte("abc"), 0)

	first, _ := store.Get(ctx, "k")
	first[0] = 'z'

	second, _ := store.Get(ctx, "k")
	if string(second) != "abc" {
		t.Errorf("stored value mutated through a returned slice: %q", second)
	}
}

func TestStore_CancelledContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Get(ctx, "k"); err == nil {
		t.Error("Get ignored a cancelled context")
	}
	if err := store.Set(ctx, "k", []byte("v"), 0); err == nil {
		t.Error("Set ignored a cancelled context")
	}
}
