package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/automoto/lurk/components"
	"github.com/automoto/lurk/config"
	"github.com/automoto/lurk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// DrawAlarm frames the screen in red while the alarm is active.
func DrawAlarm(e *ecs.ECS, screen *ebiten.Image) {
	alarmEntry, ok := components.Alarm.First(e.World)
	if !ok || !components.Alarm.Get(alarmEntry).Active {
		return
	}
	b := screen.Bounds()
	vector.StrokeRect(screen, 2, 2, float32(b.Dx()-4), float32(b.Dy()-4), 4, colornames.Red, false)
}

// DrawHUD prints run counters in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	level, ok := levelOf(e.World)
	if !ok {
		return
	}
	lines := []string{
		fmt.Sprintf("%s  frame %d  %.0f fps", level.Map.Name, level.Frame, ebiten.ActualFPS()),
	}

	if playerEntry, ok := tags.Player.First(e.World); ok {
		p := components.Player.Get(playerEntry)
		h := components.Health.Get(playerEntry)
		lines = append(lines, fmt.Sprintf("health %d/%d  detections %d", h.Current, h.Max, p.Detections))
		if p.Exposed {
			lines = append(lines, "seen by "+strings.Join(exposers(p.Exposers), ", "))
		}
	}

	if alarmEntry, ok := components.Alarm.First(e.World); ok {
		a := components.Alarm.Get(alarmEntry)
		if a.Active {
			lines = append(lines, fmt.Sprintf("ALARM (%s) %.1fs", a.RaisedBy, float64(a.FramesLeft)/float64(config.C.TickRate)))
		}
	}

	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 6, 4)
}

// DrawStatus prints the pause and end-of-run banners.
func DrawStatus(e *ecs.ECS, screen *ebiten.Image) {
	msg := ""
	if entry, ok := components.LevelComplete.First(e.World); ok {
		if c := components.LevelComplete.Get(entry); c.IsComplete {
			msg = "CAUGHT"
			if c.Escaped {
				msg = "ESCAPED"
			}
			msg += "\nR restart  N next level"
		}
	}
	if msg == "" {
		if entry, ok := components.Pause.First(e.World); ok && components.Pause.Get(entry).IsPaused {
			msg = "PAUSED"
		}
	}
	if msg == "" {
		return
	}

	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.BlackOverlay, false)
	ebitenutil.DebugPrintAt(screen, msg, b.Dx()/2-40, b.Dy()/2-10)
}

func exposers(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for kind, seen := range m {
		if seen {
			out = append(out, kind)
		}
	}
	sort.Strings(out)
	return out
}
