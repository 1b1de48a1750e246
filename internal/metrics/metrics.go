// Package metrics は入力エンジンの動きを Prometheus に出す。
package metrics

import (
    "net/http"
    "time"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
    "github.com/prometheus/client_golang/prometheus/promhttp"

    "omniinput/internal/omni"
)

// Recorder は omni.Observer を実装する。
type Recorder struct {
    reg      *prometheus.Registry
    presses  *prometheus.CounterVec
    messages *prometheus.CounterVec
    update   prometheus.Histogram
    active   prometheus.Gauge
}

var _ omni.Observer = (*Recorder)(nil)

// New は専用の Registry に登録した Recorder を返す。
func New() *Recorder {
    reg := prometheus.NewRegistry()
    f := promauto.With(reg)
    return &Recorder{
        reg: reg,
        presses: f.NewCounterVec(prometheus.CounterOpts{
            Name: "omni_press_events_total",
            Help: "Press events by input source",
        }, []string{"source"}),
        messages: f.NewCounterVec(prometheus.CounterOpts{
            Name: "omni_midi_messages_total",
            Help: "Decoded MIDI messages by type",
        }, []string{"type"}),
        update: f.NewHistogram(prometheus.HistogramOpts{
            Name:    "omni_update_duration_seconds",
            Help:    "Snapshot update duration in seconds",
            Buckets: prometheus.ExponentialBuckets(0.00001, 2, 12), // 10us to ~20ms
        }),
        active: f.NewGauge(prometheus.GaugeOpts{
            Name: "omni_active_keys",
            Help: "Active keys in the latest snapshot",
        }),
    }
}

func (r *Recorder) Pressed(id string) {
    k, _ := omni.ParseKey(id)
    r.presses.WithLabelValues(k.Kind.Source()).Inc()
}

func (r *Recorder) MidiMessage(kind string) {
    r.messages.WithLabelValues(kind).Inc()
}

func (r *Recorder) Updated(d time.Duration, active int) {
    r.update.Observe(d.Seconds())
    r.active.Set(float64(active))
}

// Registry はテストや他の exporter と合わせる場合に使う。
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Handler は /metrics 用のハンドラ。
func (r *Recorder) Handler() http.Handler {
    return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
