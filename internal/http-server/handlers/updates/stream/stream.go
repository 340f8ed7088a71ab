// Package stream pushes slot updates to connected viewers over
// server-sent events.
package stream

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"meetease/internal/lib/logger/sl"
	"meetease/internal/notifier"
)

type Subscribers interface {
	Subscribe() *notifier.Subscriber
	Unsubscribe(sub *notifier.Subscriber)
}

func New(log *slog.Logger, hub Subscribers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.updates.stream.New"

		log = log.With(slog.String("op", op))

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		sub := hub.Subscribe()
		defer hub.Unsubscribe(sub)

		log.Debug("viewer connected", slog.String("remote_addr", r.RemoteAddr))

		for {
			select {
			case event, open := <-sub.Events():
				if !open {
					return
				}

				payload, err := json.Marshal(event)
				if err != nil {
					log.Error("failed to marshal event", sl.Err(err))
					continue
				}

				if _, err = fmt.Fprintf(w, "event: slot-update\ndata: %s\n\n", payload); err != nil {
					return
				}
				flusher.Flush()

			case <-r.Context().Done():
				log.Debug("viewer disconnected", slog.String("remote_addr", r.RemoteAddr))
				return
			}
		}
	}
}
