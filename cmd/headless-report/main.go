package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Garsondee/gunplay/internal/combat"
	"github.com/Garsondee/gunplay/internal/config"
	"github.com/Garsondee/gunplay/internal/logger"
	"github.com/Garsondee/gunplay/internal/metrics"
	"github.com/Garsondee/gunplay/internal/world"
)

const (
	burstTime  = 600 * time.Millisecond
	settleTime = 200 * time.Millisecond
	readyLimit = 600 // ticks
)

type runStats struct {
	runIndex int
	seed     int64

	firstShotTick   int
	firstHitTick    int
	firstReloadTick int
	firstPickupTick int

	shots          int
	hits           int
	reloads        int
	roundsReloaded int
	pickups        int
	drops          int
	ignored        int
	slotChanges    int
	ignoredBy      map[string]int

	equipped string
	reserve  map[combat.AmmoType]int
	ticks    int
	log      string
	samples  []metrics.Sample
}

func main() {
	var runs int
	var bursts int
	var seedBase int64
	var seedStep int64
	var scenario string
	var showLog bool
	var showMetrics bool

	flag.IntVar(&runs, "runs", 3, "number of headless runs")
	flag.IntVar(&bursts, "bursts", 2, "SMG bursts before switching weapons")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "range-drill", "scenario name")
	flag.BoolVar(&showLog, "log", false, "print the event log of every run")
	flag.BoolVar(&showMetrics, "metrics", false, "print the metric totals of every run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if bursts < 0 {
		fmt.Println("error: -bursts must be >= 0")
		return
	}
	if scenario != "range-drill" {
		fmt.Printf("error: unsupported scenario %q (supported: range-drill)\n", scenario)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LoggerConfig(), os.Stderr)

	fmt.Printf("=== Headless Range Report ===\n")
	fmt.Printf("scenario=%s runs=%d bursts=%d seed_base=%d seed_step=%d\n\n", scenario, runs, bursts, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runRangeDrill(i+1, seed, bursts, cfg.AvatarSettings(), log)
		all = append(all, stats)
		printRun(stats, showLog, showMetrics)
	}

	printAggregate(all)
}

// runRangeDrill scripts one session: SMG bursts with reloads, a refused
// request mid-reload, rifle and ammo pickups, a slot switch, a drop and
// re-pickup, then semi-automatic pistol fire.
func runRangeDrill(runIndex int, seed int64, bursts int, settings combat.Settings, log *slog.Logger) runStats {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation
	targetY := 280 + rng.Float64()*80

	m := metrics.NewCollector()
	s := world.NewSim(
		world.WithSeed(seed),
		world.WithLogger(log),
		world.WithSettings(func(st *combat.Settings) { *st = settings }),
		world.WithAvatarAt(200, 360, 0),
		world.WithTarget(900, targetY, 40, 120),
		world.WithWall(600, 100, 20, 120),
		world.WithWeaponPickup(combat.WeaponAssaultRifle, 320, 520),
		world.WithWeaponPickup(combat.WeaponPistol, 480, 200),
		world.WithAmmoPickup(combat.AmmoAssaultRifle, 60, 380, 600),
		world.WithScatteredAmmo(4),
	)
	m.Register(s.Bus)
	a := s.Avatar
	tx, ty := 920.0, targetY+60

	home := func() {
		s.MoveTo(200, 360)
		s.FaceToward(tx, ty)
	}
	burst := func() {
		home()
		a.FireButtonPressed()
		s.RunFor(burstTime)
		a.FireButtonReleased()
		s.RunFor(settleTime)
	}

	for i := 0; i < bursts; i++ {
		burst()
		a.ReloadButtonPressed()
		// Refused: the machine is busy reloading.
		a.FireButtonPressed()
		a.FireButtonReleased()
		waitReady(s)
	}

	rifle := findItem(s, "Assault Rifle")
	pistol := findItem(s, "Pistol")
	pickUp(s, rifle)
	pickUp(s, findItem(s, "ar ammo"))
	waitReady(s)

	selectWeapon(s, rifle)
	burst()
	a.ReloadButtonPressed()
	waitReady(s)

	a.DropWeapon()
	s.RunFor(time.Second)
	pickUp(s, rifle)
	waitReady(s)

	pickUp(s, pistol)
	selectWeapon(s, pistol)
	home()
	for i := 0; i < 3; i++ {
		a.FireButtonPressed()
		a.FireButtonReleased()
		waitReady(s)
	}

	samples, err := m.Snapshot()
	if err != nil {
		log.Error("metrics snapshot failed", "error", err)
	}

	entries := s.Log.Entries()
	ignoredBy := map[string]int{}
	roundsReloaded := 0
	for _, e := range entries {
		switch {
		case e.Category == "combat" && e.Key == "request_ignored":
			req, _, _ := strings.Cut(e.Value, " ")
			ignoredBy[req]++
		case e.Category == "combat" && e.Key == "reload_finished":
			roundsReloaded += int(e.NumVal)
		}
	}

	equipped := "none"
	if w := a.EquippedWeapon(); w != nil {
		equipped = w.ItemName()
	}

	return runStats{
		runIndex:        runIndex,
		seed:            seed,
		firstShotTick:   firstTick(entries, "combat", "shot_fired", ""),
		firstHitTick:    firstTick(entries, "combat", "hit", ""),
		firstReloadTick: firstTick(entries, "combat", "reload_finished", ""),
		firstPickupTick: firstTick(entries, "item", "picked_up", ""),
		shots:           s.Log.CountCategory("combat", "shot_fired"),
		hits:            s.Log.CountCategory("combat", "hit"),
		reloads:         s.Log.CountCategory("combat", "reload_finished"),
		roundsReloaded:  roundsReloaded,
		pickups:         s.Log.CountCategory("item", "picked_up"),
		drops:           s.Log.CountCategory("item", "weapon_dropped"),
		ignored:         s.Log.CountCategory("combat", "request_ignored"),
		slotChanges:     s.Log.CountCategory("equip", "slot_changed"),
		ignoredBy:       ignoredBy,
		equipped:        equipped,
		reserve:         a.AmmoSnapshot(),
		ticks:           s.Ticks(),
		log:             s.Log.Format(),
		samples:         samples,
	}
}

// waitReady steps until the avatar is Ready with nothing in flight.
func waitReady(s *world.Sim) {
	s.RunUntil(func(s *world.Sim) bool {
		return s.Avatar.State() == combat.StateReady && len(s.Avatar.Flights()) == 0
	}, readyLimit)
}

// pickUp walks next to item, aims at it and presses select. When the
// trace does not resolve to item the flight is started directly.
func pickUp(s *world.Sim, item combat.Item) {
	p, ok := item.(interface{ Position() combat.Vec2 })
	if !ok {
		return
	}
	at := p.Position()
	s.MoveTo(at.X-60, at.Y)
	s.FaceToward(at.X, at.Y)
	s.RunTicks(2)
	if s.Avatar.TraceHitItem() == item {
		s.Avatar.SelectButtonPressed()
		s.Avatar.SelectButtonReleased()
	} else {
		s.Avatar.BeginPickup(item)
	}
	waitReady(s)
}

// selectWeapon presses the hotbar key of item's slot.
func selectWeapon(s *world.Sim, item combat.Item) {
	w, ok := item.(*combat.Weapon)
	if !ok || w.SlotIndex() == combat.NoSlot {
		return
	}
	s.Avatar.SelectSlot(w.SlotIndex())
	waitReady(s)
}

func findItem(s *world.Sim, name string) combat.Item {
	for _, it := range s.Arena.Items() {
		if it.ItemName() == name {
			return it
		}
	}
	return nil
}

func firstTick(entries []combat.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats, showLog, showMetrics bool) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_shot=%d first_hit=%d first_reload=%d first_pickup=%d ticks=%d\n",
		rs.firstShotTick, rs.firstHitTick, rs.firstReloadTick, rs.firstPickupTick, rs.ticks)
	fmt.Printf("event_totals: shots=%d hits=%d reloads=%d rounds_reloaded=%d pickups=%d drops=%d slot_changes=%d\n",
		rs.shots, rs.hits, rs.reloads, rs.roundsReloaded, rs.pickups, rs.drops, rs.slotChanges)
	fmt.Printf("ignored_requests: total=%d [%s]\n", rs.ignored, joinCounts(rs.ignoredBy))
	fmt.Printf("final: equipped=%s reserve=%s accuracy=%s\n", rs.equipped, formatReserve(rs.reserve), pct(rs.hits, rs.shots))
	if showLog {
		fmt.Print(rs.log)
	}
	if showMetrics {
		for _, sm := range rs.samples {
			if sm.Value == 0 {
				continue
			}
			fmt.Printf("  %s %g\n", sm, sm.Value)
		}
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalShots := 0
	totalHits := 0
	totalReloads := 0
	totalRounds := 0
	totalPickups := 0
	totalIgnored := 0
	hitTicks := make([]int, 0, len(all))
	reloadTicks := make([]int, 0, len(all))
	ignoredBy := map[string]int{}

	for _, rs := range all {
		totalShots += rs.shots
		totalHits += rs.hits
		totalReloads += rs.reloads
		totalRounds += rs.roundsReloaded
		totalPickups += rs.pickups
		totalIgnored += rs.ignored
		if rs.firstHitTick >= 0 {
			hitTicks = append(hitTicks, rs.firstHitTick)
		}
		if rs.firstReloadTick >= 0 {
			reloadTicks = append(reloadTicks, rs.firstReloadTick)
		}
		for k, v := range rs.ignoredBy {
			ignoredBy[k] += v
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_events_per_run: shots=%.1f hits=%.1f reloads=%.1f rounds_reloaded=%.1f pickups=%.1f ignored=%.1f\n",
		avg(totalShots, len(all)), avg(totalHits, len(all)), avg(totalReloads, len(all)),
		avg(totalRounds, len(all)), avg(totalPickups, len(all)), avg(totalIgnored, len(all)))
	fmt.Printf("phase_marker_avg_ticks: first_hit=%s first_reload=%s\n", avgTickString(hitTicks), avgTickString(reloadTicks))
	fmt.Printf("accuracy=%s ignored_by_request=[%s]\n", pct(totalHits, totalShots), joinCounts(ignoredBy))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func pct(num, den int) string {
	if den <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", float64(num)/float64(den)*100)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func formatReserve(r map[combat.AmmoType]int) string {
	parts := make([]string, 0, len(r))
	for _, t := range combat.AmmoTypes() {
		parts = append(parts, fmt.Sprintf("%s:%d", t, r[t]))
	}
	return strings.Join(parts, ",")
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return strings.Join(parts, ",")
}
