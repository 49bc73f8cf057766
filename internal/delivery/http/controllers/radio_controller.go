package controllers

import (
	"log/slog"
	"net/http"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
)

const (
	stationListLimit  = 10
	scheduleListLimit = 50
)

// RadioController serves the internet-radio station snapshot and schedule.
// Playback control lives on the station hardware; the HTTP control routes
// exist only to explain that to callers.
type RadioController struct {
	Logger *slog.Logger
	Radio  domain.RadioRepository
}

func NewRadioController(logger *slog.Logger, radio domain.RadioRepository) *RadioController {
	return &RadioController{Logger: logger, Radio: radio}
}

func (c *RadioController) fail(w http.ResponseWriter, r *http.Request, err error, message string) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteError(w, http.StatusInternalServerError, message+": "+err.Error())
}

// Stations handles GET /get_radio.
func (c *RadioController) Stations(w http.ResponseWriter, r *http.Request) {
	stations, err := c.Radio.ListStations(r.Context(), stationListLimit)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch radio stations")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success  bool                   `json:"success"`
		Stations []*domain.RadioStation `json:"stations"`
	}{true, stations})
}

// Schedule handles GET /get_radio_schedule.
func (c *RadioController) Schedule(w http.ResponseWriter, r *http.Request) {
	shows, total, err := c.Radio.ListSchedule(r.Context(), scheduleListLimit)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch radio schedule")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success  bool                `json:"success"`
		Schedule []*domain.RadioShow `json:"schedule"`
		Total    int                 `json:"total"`
	}{true, shows, total})
}

// PlayerStatus handles GET /get_radio_status: the first station's playback
// snapshot, or a stopped default when none is configured.
func (c *RadioController) PlayerStatus(w http.ResponseWriter, r *http.Request) {
	stations, err := c.Radio.ListStations(r.Context(), 1)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch radio status")
		return
	}
	isPlaying := false
	currentTrack := ""
	if len(stations) > 0 {
		isPlaying = stations[0].IsPlaying
		currentTrack = stations[0].CurrentTrack
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success      bool   `json:"success"`
		IsPlaying    bool   `json:"isPlaying"`
		CurrentTrack string `json:"currentTrack"`
	}{true, isPlaying, currentTrack})
}

// ControlUnavailable handles POST /radio_start, /radio_next, and
// /radio_previous. Playback control is not exposed over HTTP.
func (c *RadioController) ControlUnavailable(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{false, "Radio control not available via HTTP"})
}

// ControlMethodHint handles GET on the control routes.
func (c *RadioController) ControlMethodHint(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{false, "Use POST for radio control"})
}
