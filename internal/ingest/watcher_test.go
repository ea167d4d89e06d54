package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Floods the watcher with rapid write bursts under a short debounce
// window; every dropped document must still come out of the event
// channel, and the loop must survive events arriving while a flush is
// due.
func TestWatcherDebouncesEventBursts(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, errCh, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	const n = 25
	want := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		p := filepath.Join(root, fmt.Sprintf("conta-%02d.pdf", i))
		require.NoError(t, os.WriteFile(p, []byte("%PDF-1.4"), 0o644))
		// immediate rewrite so each path fires several events inside
		// one debounce window
		require.NoError(t, os.WriteFile(p, []byte("%PDF-1.4 atualizado"), 0o644))
		want[p] = struct{}{}
	}

	got := map[string]struct{}{}
	deadline := time.After(5 * time.Second)
	for len(got) < n {
		select {
		case p, ok := <-evCh:
			require.True(t, ok, "event channel closed early")
			got[p] = struct{}{}
		case <-errCh:
			// fs-level noise is not what this test is about
		case <-deadline:
			t.Fatalf("timed out with %d of %d paths delivered", len(got), n)
		}
	}
	for p := range want {
		assert.Contains(t, got, p)
	}

	cancel()
	closeDeadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-evCh:
			if !ok {
				return
			}
		case <-closeDeadline:
			t.Fatal("event channel not closed after cancel")
		}
	}
}

func TestWatcherIgnoresUnsupportedFiles(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notas.txt"), []byte("x"), 0o644))
	wantPDF := filepath.Join(root, "boleto.pdf")
	require.NoError(t, os.WriteFile(wantPDF, []byte("%PDF-1.4"), 0o644))

	select {
	case p := <-evCh:
		assert.Equal(t, wantPDF, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the supported document")
	}
}
