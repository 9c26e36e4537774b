package models

import "testing"

func TestVisitNormalize_IDCoalescing(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		mongoID string
		want    string
	}{
		{"id wins", "abc", "def", "abc"},
		{"falls back to _id", "", "def", "def"},
		{"both empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Visit{ID: tt.id, MongoID: tt.mongoID}
			v.Normalize()
			if v.ID != tt.want {
				t.Errorf("ID = %q, want %q", v.ID, tt.want)
			}
		})
	}
}

func TestVisitNormalize_LocationSummary(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{"all parts", &Location{City: "Pune", Region: "MH", Country: "IN"}, "Pune, MH, IN"},
		{"city only", &Location{City: "Pune"}, "Pune"},
		{"region and country", &Location{Region: "MH", Country: "IN"}, "MH, IN"},
		{"empty location", &Location{}, "-"},
		{"nil location", nil, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Visit{Location: tt.loc}
			v.Normalize()
			if v.LocationSummary != tt.want {
				t.Errorf("LocationSummary = %q, want %q", v.LocationSummary, tt.want)
			}
		})
	}
}

func TestVisitNormalize_IPAddress(t *testing.T) {
	tests := []struct {
		name  string
		visit Visit
		want  string
	}{
		{"explicit field wins", Visit{IPAddress: "1.2.3.4", Location: &Location{IP: "5.6.7.8"}}, "1.2.3.4"},
		{"nested location ip", Visit{Location: &Location{IP: "5.6.7.8"}}, "5.6.7.8"},
		{"first segment of loc string", Visit{Location: &Location{Loc: "18.5204,73.8567"}}, "18.5204"},
		{"nothing available", Visit{}, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.visit
			v.Normalize()
			if v.IPAddress != tt.want {
				t.Errorf("IPAddress = %q, want %q", v.IPAddress, tt.want)
			}
		})
	}
}

func TestVisitNormalize_RefererCoalescing(t *testing.T) {
	v := Visit{Referrer: "https://google.com"}
	v.Normalize()
	if v.Referer != "https://google.com" {
		t.Errorf("Referer = %q, want referrer value", v.Referer)
	}

	v2 := Visit{Referer: "https://a.example", Referrer: "https://b.example"}
	v2.Normalize()
	if v2.Referer != "https://a.example" {
		t.Errorf("Referer = %q, want existing referer to win", v2.Referer)
	}
}

func TestVisitPageKey(t *testing.T) {
	if got := (&Visit{Page: "/home", Path: "/other"}).PageKey(); got != "/home" {
		t.Errorf("PageKey = %q, want /home", got)
	}
	if got := (&Visit{Path: "/other"}).PageKey(); got != "/other" {
		t.Errorf("PageKey = %q, want /other", got)
	}
	if got := (&Visit{}).PageKey(); got != "unknown" {
		t.Errorf("PageKey = %q, want unknown", got)
	}
}

func TestVisitWhen(t *testing.T) {
	if got := (&Visit{Timestamp: "t1", CreatedAt: "t2"}).When(); got != "t1" {
		t.Errorf("When = %q, want timestamp", got)
	}
	if got := (&Visit{CreatedAt: "t2"}).When(); got != "t2" {
		t.Errorf("When = %q, want createdAt", got)
	}
	if got := (&Visit{}).When(); got != "" {
		t.Errorf("When = %q, want empty", got)
	}
}
