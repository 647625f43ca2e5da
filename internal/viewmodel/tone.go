package viewmodel

// Tone is a semantic color for column headers. Renderers map it onto the
// configured theme; kanban.Column.Color carries it as a string.
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	ToneActive   Tone = "active"
	ToneWaiting  Tone = "waiting"
	ToneFinished Tone = "finished"
)

// StageTone maps a status value shared by several areas onto a tone
func StageTone(stage string) Tone {
	switch stage {
	case "done", "completed":
		return ToneFinished
	case "in-progress", "active":
		return ToneActive
	case "review", "on-hold":
		return ToneWaiting
	default:
		return ToneNeutral
	}
}
