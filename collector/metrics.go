package collector

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
  resultProcessed = "processed"
  resultNotAllowListed = "not_allow_listed"
  resultNoDecoder = "no_decoder"
  resultDecodeFailed = "decode_failed"
)

var (
  advertisementsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
    Name: "govee_exporter_advertisements_total",
    Help: "Advertisements received from GVH-prefixed devices, by outcome.",
  }, []string{"result"})

  scanCyclesCounter = prometheus.NewCounter(prometheus.CounterOpts{
    Name: "govee_exporter_scan_cycles_total",
    Help: "Completed discovery windows.",
  })
)

func RegisterMetrics(reg prometheus.Registerer) {
  reg.MustRegister(
    advertisementsCounter,
    scanCyclesCounter,
  )
}
