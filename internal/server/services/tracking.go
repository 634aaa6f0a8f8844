package services

import (
	"context"
	"time"
)

// Position is one tracking stream message.
type Position struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	TicketID string  `json:"ticketId"`
}

// Reference point the simulated technician starts from (Jakarta center).
const (
	startLat = -6.2088
	startLng = 106.8456
)

// TrackingSimulator produces per-connection feeds of simulated technician
// coordinates. Each feed owns an independent position and ticker; feeds
// share nothing besides the telemetry source.
type TrackingSimulator struct {
	telemetry *Telemetry
	interval  time.Duration
}

func NewTrackingSimulator(telemetry *Telemetry, interval time.Duration) *TrackingSimulator {
	return &TrackingSimulator{telemetry: telemetry, interval: interval}
}

// Stream starts a ticker-driven position feed for the given ticket. The
// feed begins at the reference point and drifts by a bounded random delta
// every interval. Messages arrive on the returned channel in generation
// order. Cancelling ctx stops the ticker and closes the channel; no
// message is sent afterwards.
func (s *TrackingSimulator) Stream(ctx context.Context, ticketID string) <-chan Position {
	out := make(chan Position)

	go func() {
		defer close(out)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		lat, lng := startLat, startLng

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				lat += s.telemetry.PositionJitter()
				lng += s.telemetry.PositionJitter()

				select {
				case out <- Position{Lat: lat, Lng: lng, TicketID: ticketID}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
