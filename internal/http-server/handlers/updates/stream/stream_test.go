package stream

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meetease/internal/lib/logger/handlers/slogdiscard"
	"meetease/internal/notifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_DeliversSlotUpdates(t *testing.T) {
	t.Parallel()

	hub := notifier.New(slogdiscard.NewDiscardLogger(), 4)
	srv := httptest.NewServer(New(slogdiscard.NewDiscardLogger(), hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// Publish until the handler has registered its subscriber and the first
	// event comes through.
	stopPublishing := make(chan struct{})
	defer close(stopPublishing)
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				hub.Publish(notifier.Event{SlotID: "slot-1", Action: notifier.ActionBooked})
			case <-stopPublishing:
				return
			}
		}
	}()

	reader := bufio.NewReader(resp.Body)

	deadline := time.After(2 * time.Second)
	lines := make(chan string, 16)
	go func() {
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				close(lines)
				return
			}
			lines <- strings.TrimRight(line, "\n")
		}
	}()

	var data string
	for data == "" {
		select {
		case line, open := <-lines:
			if !open {
				t.Fatal("stream closed before any event arrived")
			}
			if strings.HasPrefix(line, "data: ") {
				data = strings.TrimPrefix(line, "data: ")
			}
		case <-deadline:
			t.Fatal("no event arrived on the stream")
		}
	}

	assert.JSONEq(t, `{"slotId":"slot-1","action":"booked"}`, data)
}

func TestStream_DisconnectUnsubscribes(t *testing.T) {
	t.Parallel()

	hub := notifier.New(slogdiscard.NewDiscardLogger(), 4)
	srv := httptest.NewServer(New(slogdiscard.NewDiscardLogger(), hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	cancel()
	_ = resp.Body.Close()

	// Publishing after disconnect must not panic or block.
	assert.NotPanics(t, func() {
		hub.Publish(notifier.Event{SlotID: "slot-1", Action: notifier.ActionDeleted})
	})
}
