package collector

import (
  "context"
  "time"

  "github.com/robertof/go-govee-exporter/ble"
  "github.com/robertof/go-govee-exporter/utils"
  "github.com/rs/zerolog/log"
  "golang.org/x/sync/errgroup"
)

// queueSize bounds advertisements waiting for the processing goroutine. The
// handler is pure computation, so the queue only fills if the radio delivers
// faster than we decode; a dropped advertisement is superseded by the
// device's next broadcast anyway.
const queueSize = 64

// Loop runs a discovery window of one poll interval, stops it and
// immediately starts the next one, forever. Every advertisement received
// during a window is handed off from the BLE callback goroutine to a single
// processing goroutine, so metric state only ever has one writer.
type Loop struct {
  ble *ble.Handle
  handler *Handler

  started bool
}

func NewLoop(h *ble.Handle, handler *Handler) *Loop {
  return &Loop{
    ble: h,
    handler: handler,
  }
}

// Run blocks until the context is cancelled.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
  if l.started {
    panic("attempted to call collector.Loop.Run() twice")
  }

  l.started = true

  log.Info().
    Dur("Interval", interval).
    Msg("Starting scan loop")

  queue := make(chan ble.Advertisement, queueSize)

  var eg errgroup.Group

  eg.Go(func() error {
    l.process(ctx, queue)
    return nil
  })

  eg.Go(func() error {
    return l.scan(ctx, interval, queue)
  })

  return eg.Wait()
}

func (l *Loop) scan(ctx context.Context, interval time.Duration, queue chan<- ble.Advertisement) error {
  for {
    scanCtx, cancel := context.WithTimeout(ctx, interval)

    err := l.ble.ScanAll(scanCtx, func(a ble.Advertisement) {
      // the BLE lib could deliver an advertisement even after `Scan()`
      // returns. do not enqueue data once the window is over.
      select {
      case <-scanCtx.Done():
        return
      default:
      }

      select {
      case queue <- a:
      default:
        log.Warn().
          Str("Device", a.LocalName()).
          Msg("Advertisement queue is full, dropping advertisement")
      }
    })

    cancel()

    if ctx.Err() != nil {
      log.Info().Msg("Scan loop is shutting down")
      return ctx.Err()
    }

    if err != nil && !utils.ErrorIsAnyOf(err, context.Canceled, context.DeadlineExceeded) {
      log.Error().Err(err).Msg("Scan failed, restarting discovery")
    }

    scanCyclesCounter.Inc()

    log.Trace().Msg("Discovery window elapsed, restarting scan")
  }
}

func (l *Loop) process(ctx context.Context, queue <-chan ble.Advertisement) {
  for {
    select {
    case <-ctx.Done():
      return
    case a := <-queue:
      log.Trace().
        Str("Device", a.LocalName()).
        Hex("ManufacturerData", a.ManufacturerData()).
        Msg("Received advertisement")

      l.handler.HandleAdvertisement(a)
    }
  }
}
