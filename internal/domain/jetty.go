package domain

import "strings"

// JettyLocation departure jetty.
type JettyLocation string

const (
	JettyRhumuda         JettyLocation = "Rhumuda"
	JettyKualaTerengganu JettyLocation = "Kuala Terengganu"
)

// JettyLocations all known jetties, in display order.
var JettyLocations = []JettyLocation{JettyRhumuda, JettyKualaTerengganu}

// IsValid reports whether the jetty is one of the known locations.
func (j JettyLocation) IsValid() bool {
	for _, known := range JettyLocations {
		if j == known {
			return true
		}
	}
	return false
}

// ParseJettyLocation matches s against the known jetties ignoring case and
// surrounding spaces. ok is false for unknown names.
func ParseJettyLocation(s string) (JettyLocation, bool) {
	s = strings.TrimSpace(s)
	for _, known := range JettyLocations {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}

// JettyInfo map details rendered on the summary page.
type JettyInfo struct {
	Location  JettyLocation `json:"location"`
	Latitude  float64       `json:"lat"`
	Longitude float64       `json:"lon"`
	MapURL    string        `json:"mapUrl,omitempty"`
}

var jettyInfo = map[JettyLocation]JettyInfo{
	JettyRhumuda: {
		Location:  JettyRhumuda,
		Latitude:  5.2135,
		Longitude: 103.2633,
		MapURL:    "https://maps.app.goo.gl/LkARLZyNr5NqLqeM7",
	},
	JettyKualaTerengganu: {
		Location:  JettyKualaTerengganu,
		Latitude:  5.3302,
		Longitude: 103.1408,
	},
}

// LookupJettyInfo returns coordinates for a known jetty.
func LookupJettyInfo(j JettyLocation) (JettyInfo, bool) {
	info, ok := jettyInfo[j]
	return info, ok
}
