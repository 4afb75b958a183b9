package activity

import "fmt"

// FormatHMS renders a millisecond duration as a zero-padded HH:MM:SS
// counter. Whole seconds only; sub-second remainders are truncated.
func FormatHMS(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	secs := ms / 1000
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

// Label returns the human-readable action name for a timer event kind.
func (k Kind) Label() string {
	switch k {
	case KindStarted:
		return "Started"
	case KindPaused:
		return "Paused"
	case KindFinished:
		return "Finished"
	}
	return string(k)
}
