package services

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Diagnostics is the simulated line-quality report of the health check.
type Diagnostics struct {
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	CurrentSpeed float64   `json:"currentSpeed"`
	Percentage   int       `json:"percentage"`
	Latency      int       `json:"latency"`
	PacketLoss   int       `json:"packetLoss"`
	Timestamp    time.Time `json:"timestamp"`
}

// Health status bands by percentage of subscribed speed.
const (
	StatusExcellent   = "EXCELLENT"
	StatusMaintenance = "MAINTENANCE"
	StatusTrouble     = "TROUBLE"
)

const (
	subscriptionSpeedMbps = 100
	// biased towards the upper band so demo dashboards look healthy
	minPercentage = 60
)

// Telemetry generates every randomized mock behavior of the API (line
// diagnostics, payment outcomes, position jitter) from a single seeded
// source, so tests can substitute a deterministic seed. Safe for
// concurrent use.
type Telemetry struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewTelemetry creates a generator from the given source.
func NewTelemetry(src rand.Source) *Telemetry {
	return &Telemetry{rnd: rand.New(src)}
}

// NewDefaultTelemetry creates a time-seeded generator for production use.
func NewDefaultTelemetry() *Telemetry {
	return NewTelemetry(rand.NewSource(time.Now().UnixNano()))
}

// Diagnostics produces a line-quality report. Percentage falls in
// [60, 100]; 71 and above reads EXCELLENT, 50 and above MAINTENANCE,
// anything lower TROUBLE.
func (t *Telemetry) Diagnostics() Diagnostics {
	t.mu.Lock()
	percentage := minPercentage + t.rnd.Intn(100-minPercentage+1)
	latency := 10 + t.rnd.Intn(50)
	t.mu.Unlock()

	status := StatusExcellent
	message := "Excellent Stability"
	switch {
	case percentage >= 71:
	case percentage >= 50:
		status = StatusMaintenance
		message = "Little Maintenance"
	default:
		status = StatusTrouble
		message = "Trouble connection, please call technician"
	}

	speed := float64(percentage) / 100 * subscriptionSpeedMbps

	return Diagnostics{
		Status:       status,
		Message:      message,
		CurrentSpeed: speed,
		Percentage:   percentage,
		Latency:      latency,
		PacketLoss:   0,
		Timestamp:    time.Now(),
	}
}

// PaymentDeclined reports whether the mock payment should fail. Declines
// happen with probability 0.1.
func (t *Telemetry) PaymentDeclined() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rnd.Float64() < 0.1
}

// TransactionID returns a mock transaction identifier such as "TXN-482910".
func (t *Telemetry) TransactionID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fmt.Sprintf("TXN-%d", t.rnd.Intn(1000000))
}

// PositionJitter returns a bounded random coordinate delta in
// (-0.0005, 0.0005).
func (t *Telemetry) PositionJitter() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return (t.rnd.Float64() - 0.5) * 0.001
}
