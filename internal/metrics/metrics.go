package metrics

import (
	"net/http"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Garsondee/gunplay/internal/combat"
)

// Collector subscribes to an avatar bus and records metrics in its own
// registry.
type Collector struct {
	reg *prometheus.Registry

	EventsPublished   *prometheus.CounterVec
	ShotsFired        *prometheus.CounterVec
	Hits              prometheus.Counter
	Reloads           *prometheus.CounterVec
	RoundsReloaded    *prometheus.CounterVec
	ItemsPickedUp     *prometheus.CounterVec
	WeaponsDropped    prometheus.Counter
	RequestsIgnored   *prometheus.CounterVec
	StateTransitions  *prometheus.CounterVec
	EquipSlotChanges  prometheus.Counter
	MagazineRemaining prometheus.Gauge
}

// NewCollector creates a collector with a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Collector{
		reg: reg,
		EventsPublished: f.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		}, []string{LabelType}),
		ShotsFired: f.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNameShotsFired,
			Help: HelpTextShotsFired,
		}, []string{LabelWeapon}),
		Hits: f.NewCounter(prometheus.CounterOpts{
			Name: MetricNameHits,
			Help: HelpTextHits,
		}),
		Reloads: f.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNameReloads,
			Help: HelpTextReloads,
		}, []string{LabelAmmoType}),
		RoundsReloaded: f.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNameRoundsReloaded,
			Help: HelpTextRoundsReloaded,
		}, []string{LabelAmmoType}),
		ItemsPickedUp: f.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNameItemsPickedUp,
			Help: HelpTextItemsPickedUp,
		}, []string{LabelKind}),
		WeaponsDropped: f.NewCounter(prometheus.CounterOpts{
			Name: MetricNameWeaponsDropped,
			Help: HelpTextWeaponsDropped,
		}),
		RequestsIgnored: f.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNameRequestsIgnored,
			Help: HelpTextRequestsIgnored,
		}, []string{LabelRequest, LabelState}),
		StateTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNameStateTransitions,
			Help: HelpTextStateTransitions,
		}, []string{LabelFrom, LabelTo}),
		EquipSlotChanges: f.NewCounter(prometheus.CounterOpts{
			Name: MetricNameEquipSlotChanges,
			Help: HelpTextEquipSlotChanges,
		}),
		MagazineRemaining: f.NewGauge(prometheus.GaugeOpts{
			Name: MetricNameMagazineRemaining,
			Help: HelpTextMagazineRemaining,
		}),
	}
}

// Registry exposes the collector's registry.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}

// Register subscribes to every event on bus.
func (c *Collector) Register(bus *combat.Bus) {
	bus.SubscribeAll(c.HandleEvent)
}

// HandleEvent updates metrics for one event.
func (c *Collector) HandleEvent(ev combat.Event) {
	c.EventsPublished.WithLabelValues(string(ev.Type)).Inc()

	switch p := ev.Payload.(type) {
	case combat.ShotPayload:
		c.ShotsFired.WithLabelValues(p.Weapon.String()).Inc()
		c.MagazineRemaining.Set(float64(p.Remaining))
	case combat.HitPayload:
		c.Hits.Inc()
	case combat.ReloadPayload:
		c.Reloads.WithLabelValues(p.AmmoType.String()).Inc()
		c.RoundsReloaded.WithLabelValues(p.AmmoType.String()).Add(float64(p.Transferred))
	case combat.PickupPayload:
		kind := KindAmmo
		if _, ok := p.Item.(*combat.Weapon); ok {
			kind = KindWeapon
		}
		c.ItemsPickedUp.WithLabelValues(kind).Inc()
	case combat.DropPayload:
		c.WeaponsDropped.Inc()
	case combat.RequestIgnoredPayload:
		c.RequestsIgnored.WithLabelValues(string(p.Request), p.State.String()).Inc()
	case combat.StateChangedPayload:
		c.StateTransitions.WithLabelValues(p.From.String(), p.To.String()).Inc()
	case combat.EquipSlotPayload:
		c.EquipSlotChanges.Inc()
	}
}

// Sample is one series value from the registry.
type Sample struct {
	Name   string
	Labels string // k=v pairs joined with ","
	Value  float64
}

func (s Sample) String() string {
	if s.Labels == "" {
		return s.Name
	}
	return s.Name + "{" + s.Labels + "}"
}

// Snapshot gathers every counter and gauge series, sorted by name and labels.
func (c *Collector) Snapshot() ([]Sample, error) {
	families, err := c.reg.Gather()
	if err != nil {
		return nil, err
	}
	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var pairs []string
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, lp.GetName()+"="+lp.GetValue())
			}
			value := m.GetCounter().GetValue()
			if g := m.GetGauge(); g != nil {
				value = g.GetValue()
			}
			out = append(out, Sample{Name: mf.GetName(), Labels: strings.Join(pairs, ","), Value: value})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, nil
}
