// internal/domain/models/record.go
package models

// CoalesceID picks the canonical record id from the two primary-key field
// names the gateway is known to emit. The "id" value wins when present and
// non-empty, then "_id", then empty string. The gateway does not guarantee a
// consistent key name, so every record type funnels through this.
func CoalesceID(id, mongoID string) string {
	if id != "" {
		return id
	}
	return mongoID
}
