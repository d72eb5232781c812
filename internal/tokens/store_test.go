package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, *MapTarget) {
	target := NewMapTarget()
	store := NewStore(StoreOptions{Target: target})
	return store, target
}

func TestStoreSeedsTarget(t *testing.T) {
	_, target := newTestStore()

	assert.Equal(t, "#7D56F4", target.Props["--colors-brand-primary"])
	assert.Equal(t, "#6C4FD8", target.Props["--colors-brand-primary-fallback"])
}

func TestStoreSetAppliesImmediately(t *testing.T) {
	store, target := newTestStore()

	var events []ChangeEvent
	store.Subscribe(func(ev ChangeEvent) {
		events = append(events, ev)
	})

	store.Set("colors.brand.primary", "#123456")

	assert.Equal(t, "#123456", target.Props["--colors-brand-primary"])
	assert.Equal(t, "#123456", store.Value("colors.brand.primary", ""))

	require.Len(t, events, 1)
	assert.False(t, events[0].Batched)
	assert.Equal(t, map[string]string{"colors.brand.primary": "#123456"}, events[0].Values)
}

func TestStoreBatchDefersUntilFlush(t *testing.T) {
	store, target := newTestStore()

	var events []ChangeEvent
	store.Subscribe(func(ev ChangeEvent) {
		events = append(events, ev)
	})

	store.SetBatch(map[string]string{
		"colors.brand.primary":   "#111111",
		"colors.brand.secondary": "#222222",
	})

	// nothing observable before the flush
	assert.Equal(t, "#7D56F4", target.Props["--colors-brand-primary"])
	assert.Empty(t, events)

	store.Flush()

	assert.Equal(t, "#111111", target.Props["--colors-brand-primary"])
	assert.Equal(t, "#222222", target.Props["--colors-brand-secondary"])

	require.Len(t, events, 1, "a batch fires one aggregate event")
	assert.True(t, events[0].Batched)
	assert.Len(t, events[0].Values, 2)
}

func TestStoreFlushWithoutPendingIsNoop(t *testing.T) {
	store, _ := newTestStore()

	fired := 0
	store.Subscribe(func(ChangeEvent) { fired++ })

	store.Flush()
	assert.Zero(t, fired)
}

func TestStoreBatchLastWriteWins(t *testing.T) {
	store, target := newTestStore()

	store.SetBatch(map[string]string{"colors.brand.primary": "#111111"})
	store.SetBatch(map[string]string{"colors.brand.primary": "#222222"})
	store.Flush()

	assert.Equal(t, "#222222", target.Props["--colors-brand-primary"])
}

func TestStoreUnknownPathCreatesProperty(t *testing.T) {
	store, target := newTestStore()

	store.Set("colors.custom.glow", "#ABCDEF")

	assert.Equal(t, "#ABCDEF", target.Props["--colors-custom-glow"])
	tok, ok := store.Lookup("colors.custom.glow")
	require.True(t, ok)
	assert.Equal(t, "#ABCDEF", tok.Value)
}

func TestStoreValueFallback(t *testing.T) {
	store, _ := newTestStore()

	assert.Equal(t, "#FFF", store.Value("missing.path", "#FFF"))
	assert.Equal(t, "", store.Value("missing.path", ""))
}

func TestStoreReset(t *testing.T) {
	store, target := newTestStore()

	store.Set("colors.brand.primary", "#123456")
	store.Reset()

	assert.Equal(t, "#7D56F4", store.Value("colors.brand.primary", ""))
	assert.Equal(t, "#7D56F4", target.Props["--colors-brand-primary"])
}

func TestStoreUnsubscribe(t *testing.T) {
	store, _ := newTestStore()

	fired := 0
	unsubscribe := store.Subscribe(func(ChangeEvent) { fired++ })

	store.Set("colors.brand.primary", "#111111")
	unsubscribe()
	store.Set("colors.brand.primary", "#222222")

	assert.Equal(t, 1, fired)
}
