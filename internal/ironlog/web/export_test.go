package web

import "time"

func SetNow(h *Handler, now func() time.Time) {
	h.now = now
}
