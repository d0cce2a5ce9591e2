package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/gunplay/internal/combat"
)

const (
	slotSize       = 54
	slotGap        = 6
	crosshairGap   = 6.0  // px at zero spread
	crosshairScale = 14.0 // px per unit of spread
	crosshairArm   = 8.0
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}

// slotLabels are the keys bound to each hotbar slot.
var slotLabels = [combat.InventoryCapacity]string{"F", "1", "2", "3", "4", "5"}

// HUD is the hotbar, ammo counter and crosshair. Its slot state is driven
// only by bus notifications.
type HUD struct {
	equipped    int
	highlighted int
	pulse       float64 // highlight animation phase, radians
	status      string
}

// NewHUD seeds a HUD from a's current slots and subscribes it to a's bus.
func NewHUD(a *combat.Avatar) *HUD {
	h := &HUD{equipped: a.EquippedSlot(), highlighted: a.HighlightedSlot()}
	bus := a.Bus()
	bus.Subscribe(combat.EventEquipSlotChanged, func(ev combat.Event) {
		if p, ok := ev.Payload.(combat.EquipSlotPayload); ok {
			h.equipped = p.New
		}
	})
	bus.Subscribe(combat.EventHighlightStart, func(ev combat.Event) {
		if p, ok := ev.Payload.(combat.HighlightPayload); ok {
			h.highlighted = p.Slot
			h.pulse = 0
		}
	})
	bus.Subscribe(combat.EventHighlightStop, func(ev combat.Event) {
		if p, ok := ev.Payload.(combat.HighlightPayload); ok && p.Slot == h.highlighted {
			h.highlighted = combat.NoSlot
		}
	})
	bus.Subscribe(combat.EventWeaponDropped, func(ev combat.Event) {
		if p, ok := ev.Payload.(combat.DropPayload); ok && p.Slot == h.equipped {
			h.equipped = combat.NoSlot
		}
	})
	bus.Subscribe(combat.EventReloadFinished, func(ev combat.Event) {
		if p, ok := ev.Payload.(combat.ReloadPayload); ok {
			h.status = fmt.Sprintf("reloaded %d %s", p.Transferred, p.AmmoType)
		}
	})
	return h
}

// EquippedSlot is the slot the hotbar marks as in hand.
func (h *HUD) EquippedSlot() int { return h.equipped }

// HighlightedSlot is the slot whose icon is pulsing, or NoSlot.
func (h *HUD) HighlightedSlot() int { return h.highlighted }

// Status is the last transient message.
func (h *HUD) Status() string { return h.status }

// Update advances the highlight animation by one frame.
func (h *HUD) Update() {
	if h.highlighted != combat.NoSlot {
		h.pulse += 0.15
	}
}

// Draw renders the hotbar along the bottom of the playfield, the magazine
// and reserve counters, and the crosshair at the cursor.
func (h *HUD) Draw(screen *ebiten.Image, a *combat.Avatar, offX, offY, fieldW, fieldH, cursorX, cursorY int) {
	slots := a.InventorySlots()
	barW := combat.InventoryCapacity*slotSize + (combat.InventoryCapacity-1)*slotGap
	x0 := offX + (fieldW-barW)/2
	y0 := offY + fieldH - slotSize - 10

	for i, w := range slots {
		sx := float32(x0 + i*(slotSize+slotGap))
		sy := float32(y0)
		vector.FillRect(screen, sx, sy, slotSize, slotSize, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)

		border := color.RGBA{R: 60, G: 100, B: 60, A: 180}
		width := float32(1)
		if i == h.equipped {
			border = color.RGBA{R: 230, G: 220, B: 120, A: 255}
			width = 2
		}
		vector.StrokeRect(screen, sx, sy, slotSize, slotSize, width, border, false)

		if i == h.highlighted {
			alpha := uint8(120 + 100*math.Abs(math.Sin(h.pulse)))
			vector.StrokeRect(screen, sx-3, sy-3, slotSize+6, slotSize+6, 2, color.RGBA{R: 120, G: 220, B: 255, A: alpha}, false)
		}

		drawText(screen, slotLabels[i], float64(sx)+3, float64(sy)+2, color.RGBA{R: 140, G: 160, B: 140, A: 255})
		if w != nil {
			drawText(screen, shortName(w), float64(sx)+4, float64(sy)+slotSize/2-6, color.White)
			drawText(screen, fmt.Sprintf("%d", w.Ammo()), float64(sx)+4, float64(sy)+slotSize-16, color.RGBA{R: 190, G: 190, B: 150, A: 255})
		}
	}

	ammo := "unarmed"
	if w := a.EquippedWeapon(); w != nil {
		ammo = fmt.Sprintf("%s  %d / %d", w.ItemName(), w.Ammo(), a.Ammo(w.AmmoType()))
	}
	drawText(screen, ammo, float64(x0+barW+16), float64(y0+8), color.White)
	drawText(screen, a.State().String(), float64(x0+barW+16), float64(y0+24), color.RGBA{R: 160, G: 200, B: 160, A: 255})
	if h.status != "" {
		drawText(screen, h.status, float64(x0+barW+16), float64(y0+40), color.RGBA{R: 150, G: 150, B: 150, A: 255})
	}

	h.drawCrosshair(screen, a.CrosshairSpread(), cursorX, cursorY)
}

// CrosshairGap is the pixel distance from the cursor to each arm for spread.
func CrosshairGap(spread float64) float64 {
	return crosshairGap + spread*crosshairScale
}

func (h *HUD) drawCrosshair(screen *ebiten.Image, spread float64, cx, cy int) {
	gap := float32(CrosshairGap(spread))
	x, y := float32(cx), float32(cy)
	col := color.RGBA{R: 240, G: 240, B: 240, A: 230}
	vector.StrokeLine(screen, x-gap-crosshairArm, y, x-gap, y, 1.5, col, false)
	vector.StrokeLine(screen, x+gap, y, x+gap+crosshairArm, y, 1.5, col, false)
	vector.StrokeLine(screen, x, y-gap-crosshairArm, x, y-gap, 1.5, col, false)
	vector.StrokeLine(screen, x, y+gap, x, y+gap+crosshairArm, 1.5, col, false)
	vector.FillRect(screen, x-0.5, y-0.5, 1, 1, col, false)
}

func shortName(w *combat.Weapon) string {
	switch w.Kind() {
	case combat.WeaponSubmachineGun:
		return "SMG"
	case combat.WeaponAssaultRifle:
		return "AR"
	case combat.WeaponPistol:
		return "PST"
	default:
		return "?"
	}
}
