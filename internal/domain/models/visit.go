// internal/domain/models/visit.go
package models

import "strings"

// Location is the nested geolocation block some visit records carry.
// "loc" is a combined "lat,long" style string from the upstream IP lookup.
type Location struct {
	IP       string `json:"ip,omitempty"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
	Country  string `json:"country,omitempty"`
	Loc      string `json:"loc,omitempty"`
	Org      string `json:"org,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	Postal   string `json:"postal,omitempty"`
}

// Visit is a single site-visit record from the gateway's /visits endpoint.
// LocationSummary is derived locally, never read from the wire.
type Visit struct {
	ID         string    `json:"id"`
	MongoID    string    `json:"_id"`
	UserID     string    `json:"userId,omitempty"`
	UserName   string    `json:"userName,omitempty"`
	UserEmail  string    `json:"userEmail,omitempty"`
	Page       string    `json:"page,omitempty"`
	Path       string    `json:"path,omitempty"`
	Duration   float64   `json:"duration,omitempty"`
	IPAddress  string    `json:"ipAddress,omitempty"`
	UserAgent  string    `json:"userAgent,omitempty"`
	Timestamp  string    `json:"timestamp,omitempty"`
	CreatedAt  string    `json:"createdAt,omitempty"`
	Referrer   string    `json:"referrer,omitempty"`
	DeviceType string    `json:"deviceType,omitempty"`
	Referer    string    `json:"referer,omitempty"`
	Location   *Location `json:"location,omitempty"`

	LocationSummary string `json:"-"`
}

// Normalize coalesces the primary-key fields and computes the derived
// display fields. The gateway spells "referer" both ways across records,
// emits the client IP in up to three places, and may omit geolocation
// entirely; all of that is absorbed here so handlers see one shape.
func (v *Visit) Normalize() {
	v.ID = CoalesceID(v.ID, v.MongoID)

	if v.Referer == "" {
		v.Referer = v.Referrer
	}

	loc := v.Location
	if loc == nil {
		loc = &Location{}
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{loc.City, loc.Region, loc.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	v.LocationSummary = strings.Join(parts, ", ")
	if v.LocationSummary == "" {
		v.LocationSummary = "-"
	}

	if v.IPAddress == "" {
		switch {
		case loc.IP != "":
			v.IPAddress = loc.IP
		case loc.Loc != "":
			v.IPAddress = strings.SplitN(loc.Loc, ",", 2)[0]
		default:
			v.IPAddress = "-"
		}
	}
}

// PageKey is the value visits are bucketed by for the most-visited
// aggregate: page, falling back to path, falling back to "unknown".
func (v *Visit) PageKey() string {
	if v.Page != "" {
		return v.Page
	}
	if v.Path != "" {
		return v.Path
	}
	return "unknown"
}

// When returns the best available event time string (timestamp first,
// then createdAt), empty if the record carries neither.
func (v *Visit) When() string {
	if v.Timestamp != "" {
		return v.Timestamp
	}
	return v.CreatedAt
}

// SearchFields returns the values the visits list filter matches against.
func (v *Visit) SearchFields() []string {
	return []string{
		v.UserName,
		v.UserEmail,
		v.Page,
		v.Path,
		v.ID,
		v.IPAddress,
		v.Referer,
		v.UserAgent,
		v.LocationSummary,
	}
}
