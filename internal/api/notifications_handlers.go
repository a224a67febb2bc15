// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package api

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"grimm.is/flywatch/internal/errors"
	"grimm.is/flywatch/internal/geo"
	"grimm.is/flywatch/internal/i18n"
	"grimm.is/flywatch/internal/notification"
	"grimm.is/flywatch/internal/page"
	"grimm.is/flywatch/internal/presenter"
)

// Locator fills in where a host is. *geo.Resolver implements it.
type Locator interface {
	Lookup(ip net.IP) (geo.Location, error)
}

// NotificationHandlers serves the notification log.
type NotificationHandlers struct {
	server *Server
}

// RegisterRoutes registers the notification routes
func (h *NotificationHandlers) RegisterRoutes(router *mux.Router) {
	s := h.server
	ingest := http.HandlerFunc(h.handleAppend)
	if s.limiter != nil {
		ingest = RateLimit(s.limiter, func() { s.rejected("rate_limited") }, ingest)
	}

	router.HandleFunc("/api/notifications", ingest).Methods(http.MethodPost)
	router.HandleFunc("/api/notifications", h.handleGetPage).Methods(http.MethodGet)
	router.HandleFunc("/api/notifications", h.handleClearAll).Methods(http.MethodDelete)
	router.HandleFunc("/api/notifications/read", h.handleMarkRead).Methods(http.MethodPost)
	router.Handle("/api/notifications/ws", s.hub).Methods(http.MethodGet)
}

// appendResponse acknowledges an ingested event.
type appendResponse struct {
	ID       uuid.UUID         `json:"id"`
	Kind     notification.Kind `json:"kind"`
	Received time.Time         `json:"received"`
}

// handleAppend ingests one event from the detection engine.
// POST /api/notifications
//
// Body: {"kind": "...", "event": {...}, "ip": "optional host address"}.
// For favorite events the ip is used to fill in a missing country or ASN.
func (h *NotificationHandlers) handleAppend(w http.ResponseWriter, r *http.Request) {
	s := h.server
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		s.rejected("body")
		WriteError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	ev, err := notification.UnmarshalEvent(body)
	if err != nil {
		s.rejected("invalid_event")
		writeErr(w, err)
		return
	}

	var extra struct {
		IP string `json:"ip"`
	}
	_ = json.Unmarshal(body, &extra)
	if fav, ok := ev.(notification.FavoriteTransmitted); ok && extra.IP != "" {
		ev = s.enrich(fav, extra.IP)
	}

	entry := s.log.Append(ev)
	WriteJSON(w, http.StatusCreated, appendResponse{ID: entry.ID, Kind: ev.Kind(), Received: entry.Received})
}

// handleGetPage returns the notifications page in the request language.
// GET /api/notifications
func (h *NotificationHandlers) handleGetPage(w http.ResponseWriter, r *http.Request) {
	pg := h.server.buildPage(i18n.FromContext(r.Context()))
	WriteJSON(w, http.StatusOK, pg)
}

// handleClearAll empties the log.
// DELETE /api/notifications
func (h *NotificationHandlers) handleClearAll(w http.ResponseWriter, r *http.Request) {
	h.server.log.Execute(notification.ClearAllCommand{})
	w.WriteHeader(http.StatusNoContent)
}

// handleMarkRead resets the unread counter.
// POST /api/notifications/read
func (h *NotificationHandlers) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	h.server.log.MarkRead()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) buildPage(p *i18n.Printer) page.Page {
	pg := page.Build(s.store.Thresholds(), s.log.Snapshot(), presenter.New(p))
	if s.metrics != nil {
		s.metrics.PageRendered(pg.State)
	}
	return pg
}

func (s *Server) renderPage(p *i18n.Printer) ([]byte, error) {
	data, err := json.Marshal(s.buildPage(p))
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "encode page")
	}
	return data, nil
}

// enrich fills the country and ASN of a favorite host the producer could
// not place. Values the producer did send are kept.
func (s *Server) enrich(ev notification.FavoriteTransmitted, addr string) notification.FavoriteTransmitted {
	if s.locator == nil {
		return ev
	}
	ip := net.ParseIP(addr)
	if ip == nil {
		s.logger.Debug("ignoring unparsable host address", "ip", addr)
		return ev
	}
	loc, err := s.locator.Lookup(ip)
	if err != nil {
		s.logger.Warn("geoip lookup failed", "ip", addr, "error", err)
		return ev
	}
	if !ev.Host.Country.IsKnown() && loc.Country.IsKnown() {
		ev.Host.Country = loc.Country
	}
	if ev.Host.ASNName == "" {
		ev.Host.ASNName = loc.ASNName
	}
	return ev
}

func (s *Server) rejected(reason string) {
	if s.metrics != nil {
		s.metrics.Rejected(reason)
	}
}
