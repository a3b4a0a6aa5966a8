package handlers

import (
	"net/http"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
)

// handleIndex serves the home page
func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title": "The Daily Wee",
		"Day":   h.Schedule.Today(),
	}
	h.templates.Index.Execute(w, data)
}

// handleRitualToday returns today's seed view
func (h *Handlers) handleRitualToday(w http.ResponseWriter, r *http.Request) {
	day := h.Schedule.Today()
	if day < 0 {
		// Pre-epoch clients get the countdown screen
		day = 0
	}

	view, err := h.Schedule.DayView(day)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, view)
}

// handleRitualDay returns the view for a specific day
func (h *Handlers) handleRitualDay(w http.ResponseWriter, r *http.Request) {
	day, err := parseIntParam(r, "day")
	if err != nil {
		respondError(w, err)
		return
	}

	view, err := h.Schedule.DayView(day)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, view)
}

// handleDayQR serves a QR code PNG linking to a day's puzzle. Only
// already-unlocked days get one; handing out tomorrow's seed early
// would defeat the lock.
func (h *Handlers) handleDayQR(w http.ResponseWriter, r *http.Request) {
	day, err := parseIntParam(r, "day")
	if err != nil {
		respondError(w, err)
		return
	}

	view, err := h.Schedule.DayView(day)
	if err != nil {
		respondError(w, err)
		return
	}
	if view.Locked || view.Prelaunch {
		respondError(w, BadRequest("Day has no shareable seed yet"))
		return
	}

	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	shareURL := scheme + "://" + r.Host + "/?day=" + strconv.Itoa(day)

	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		respondError(w, InternalError(err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// handleReloadRitual re-reads the schedule artifact from disk
func (h *Handlers) handleReloadRitual(w http.ResponseWriter, r *http.Request) {
	horizon, err := h.Schedule.Reload()
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, ReloadResponse{Message: "Schedule reloaded", Horizon: horizon})
}
