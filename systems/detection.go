package systems

import (
	"github.com/automoto/lurk/components"
	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/logger"
	"github.com/automoto/lurk/shared/detection"
	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// UpdateDetection resolves the player's hitbox against the union of every
// agent's visible region. It writes the sighting fields each agent's policy
// reads next frame, the player's exposure, and exposure damage.
func UpdateDetection(w donburi.World) {
	detEntry, ok := components.Detection.First(w)
	if !ok {
		return
	}
	det := components.Detection.Get(detEntry)
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	rect := components.Object.Get(playerEntry).Rect()
	center := rect.Center()

	var shapes []detection.Shape
	var agents []*donburi.Entry
	tags.Agent.Each(w, func(e *donburi.Entry) {
		agent := components.Agent.Get(e)
		v := components.Vision.Get(e)
		shapes = append(shapes, detection.Shape{
			ID:         len(agents),
			Label:      agent.Kind,
			Fan:        v.Fan,
			Center:     components.Motion.Get(e).Position,
			NearRadius: v.NearRadius,
		})
		agents = append(agents, e)
	})

	res := det.Resolver.Resolve(shapes, rect)
	det.Result = res
	det.Detected = res.Detected

	seen := make(map[int]bool, len(res.Hits))
	for _, h := range res.Hits {
		seen[h.ID] = true
	}
	bands := detection.Bands{Seen: cfg.Detection.SeenDistance, Suspicious: cfg.Detection.SuspiciousDistance}
	for i, e := range agents {
		agent := components.Agent.Get(e)
		agent.SeesPlayer = seen[i]
		if !agent.SeesPlayer {
			agent.Band = detection.BandUnaware
			agent.LostFrames++
			continue
		}
		agent.Band = bands.Classify(gamemath.Distance(shapes[i].Center, center))
		agent.LastSeen = center
		agent.HasLastSeen = true
		agent.LostFrames = 0
	}

	updateExposure(playerEntry, res)
}

func updateExposure(playerEntry *donburi.Entry, res detection.Result) {
	player := components.Player.Get(playerEntry)
	wasExposed := player.Exposed
	player.Exposed = res.Detected
	player.Exposers = make(map[string]bool, len(res.Labels))
	for _, l := range res.Labels {
		player.Exposers[l] = true
	}

	if !player.Exposed {
		player.ExposedFrames = 0
		return
	}
	player.ExposedFrames++
	if !wasExposed {
		player.Detections++
		logger.Log.WithFields(logrus.Fields{
			"by":    res.Labels,
			"count": player.Detections,
		}).Info("player detected")
	}
	if cfg.Player.DamageInterval > 0 && player.ExposedFrames%cfg.Player.DamageInterval == 0 && playerEntry.HasComponent(components.Health) {
		components.Health.Get(playerEntry).Damage(1)
	}
}
