package model

// Zone is a named segment of a rugby pitch used to tag and group clips
type Zone string

const (
	ZoneInGoalLeft  Zone = "in-goal-left"
	Zone22mLeft     Zone = "22m-left"
	Zone40mLeft     Zone = "40m-left"
	ZoneMidfield    Zone = "midfield"
	Zone40mRight    Zone = "40m-right"
	Zone22mRight    Zone = "22m-right"
	ZoneInGoalRight Zone = "in-goal-right"
)

// Zones returns the known pitch zones in display order, left in-goal to right
func Zones() []Zone {
	return []Zone{
		ZoneInGoalLeft,
		Zone22mLeft,
		Zone40mLeft,
		ZoneMidfield,
		Zone40mRight,
		Zone22mRight,
		ZoneInGoalRight,
	}
}

var zoneLabels = map[Zone]string{
	ZoneInGoalLeft:  "Left in-goal",
	Zone22mLeft:     "Left 22m",
	Zone40mLeft:     "Left 40m",
	ZoneMidfield:    "Midfield",
	Zone40mRight:    "Right 40m",
	Zone22mRight:    "Right 22m",
	ZoneInGoalRight: "Right in-goal",
}

// Label returns the human-readable name for a zone, or the raw value if unknown
func (z Zone) Label() string {
	if label, ok := zoneLabels[z]; ok {
		return label
	}
	return string(z)
}

// Known reports whether the zone belongs to the fixed zone set
func (z Zone) Known() bool {
	_, ok := zoneLabels[z]
	return ok
}

// Video is one record in the videos document.
// URL acts as the addressing key for edit/delete; the store does not
// enforce uniqueness beyond first-match lookups.
type Video struct {
	Zone    Zone   `json:"zone"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
	URL     string `json:"url"`
}
