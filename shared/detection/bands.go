package detection

// ExposureBand grades how close a sighted player is to an agent. Bands only
// select alert thresholds and colours; they never decide detection.
type ExposureBand int

const (
	BandUnaware ExposureBand = iota
	BandSuspicious
	BandSeen
)

func (b ExposureBand) String() string {
	switch b {
	case BandSeen:
		return "seen"
	case BandSuspicious:
		return "suspicious"
	default:
		return "unaware"
	}
}

// Bands holds the distance thresholds in world units.
type Bands struct {
	Seen       float64
	Suspicious float64
}

// Classify returns the band for a centre-to-centre distance.
func (b Bands) Classify(distance float64) ExposureBand {
	switch {
	case distance <= b.Seen:
		return BandSeen
	case distance <= b.Suspicious:
		return BandSuspicious
	default:
		return BandUnaware
	}
}
