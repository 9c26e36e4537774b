// internal/domain/models/widget.go
package models

// Widget status and pricing values are closed enumerations; the gateway
// rejects anything else and so does the console's form validation.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	PricingFree = "free"
	PricingPaid = "paid"
)

// IsValidStatus reports whether s is one of the two widget statuses.
func IsValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}

// IsValidPricing reports whether s is one of the two pricing values.
func IsValidPricing(s string) bool {
	return s == PricingFree || s == PricingPaid
}

// ToggleStatus returns the opposite widget status. Unknown input maps to
// active so a toggle on a malformed record still lands on a valid value.
func ToggleStatus(s string) string {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// Widget is an AI widget catalog entry. The same struct is used for list
// responses and for create/update request bodies; visitId and the cost and
// age-limit fields are numeric on the wire even though the form posts them
// as strings.
type Widget struct {
	ID               string  `json:"id,omitempty"`
	MongoID          string  `json:"_id,omitempty"`
	VisitID          int64   `json:"visitId"`
	VisitCategory    string  `json:"visitCategory"`
	VisitName        string  `json:"visitName"`
	WidgetName       string  `json:"widgetName"`
	WidgetVendor     string  `json:"widgetVendor,omitempty"`
	WidgetPaidOrFree string  `json:"widgetPaidOrFree"`
	VisitCostPerUnit float64 `json:"visitCostPerUnit"`
	VisitUnit        string  `json:"visitUnit,omitempty"`
	VisitAgeLimit    int     `json:"visitAgeLimit"`
	VisitStatus      string  `json:"visitStatus"`
}

// Normalize coalesces the primary-key fields into ID.
func (w *Widget) Normalize() {
	w.ID = CoalesceID(w.ID, w.MongoID)
}

// SearchFields returns the values the widgets list filter matches against.
func (w *Widget) SearchFields() []string {
	return []string{w.WidgetName, w.WidgetVendor}
}

// WidgetCategory is a top-level catalog category.
type WidgetCategory struct {
	ID            string `json:"id,omitempty"`
	MongoID       string `json:"_id,omitempty"`
	VisitCategory string `json:"visitCategory"`
	Description   string `json:"description,omitempty"`
}

// Normalize coalesces the primary-key fields into ID.
func (c *WidgetCategory) Normalize() {
	c.ID = CoalesceID(c.ID, c.MongoID)
}
