package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargoconnect/logistics-api/internal/api/metrics"
	"github.com/cargoconnect/logistics-api/internal/core/domain"
	"github.com/cargoconnect/logistics-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes notifications to a fixed set of workers using consistent
// hashing on the tracking code, guaranteeing per-shipment delivery ordering.
// A failed delivery is logged and counted; it never propagates back to the
// transition that produced the notification.
type Dispatcher struct {
	workers []chan *domain.Notification
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan *domain.Notification, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a notification to the worker responsible for its tracking
// code. Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(n *domain.Notification) {
	idx := d.shardIndex(n.TrackingCode)
	d.workers[idx] <- n
	metrics.NotifyQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a tracking code deterministically to a worker index.
func (d *Dispatcher) shardIndex(trackingCode string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(trackingCode))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan *domain.Notification) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			metrics.NotifyQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))

			start := time.Now()
			if err := d.service.Deliver(ctx, n); err != nil {
				metrics.NotificationsFailedTotal.WithLabelValues(string(n.Status)).Inc()
				d.log.Error().Err(err).
					Str("tracking_code", n.TrackingCode).
					Int("worker_id", id).
					Msg("notification delivery failed")
			} else {
				metrics.NotificationsSentTotal.WithLabelValues(string(n.Status)).Inc()
			}
			metrics.NotificationDuration.WithLabelValues(string(n.Status)).Observe(time.Since(start).Seconds())
		}
	}
}
