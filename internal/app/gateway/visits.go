// internal/app/gateway/visits.go
package gateway

import (
	"context"
	"encoding/json"

	"github.com/dspcoder123/admin-panel/internal/domain/models"
	"go.uber.org/zap"
)

// FetchVisits returns the full visit list with derived display fields
// (location summary, coalesced IP and referer) already computed.
func (c *Client) FetchVisits(ctx context.Context) ([]models.Visit, error) {
	body, err := c.get(ctx, "/visits", nil)
	if err != nil {
		return nil, err
	}

	raws, _ := decodeList(body, "visits", false)
	visits := make([]models.Visit, 0, len(raws))
	for _, raw := range raws {
		var v models.Visit
		if err := json.Unmarshal(raw, &v); err != nil {
			c.log.Debug("skipping malformed visit record", zap.Error(err))
			continue
		}
		v.Normalize()
		visits = append(visits, v)
	}
	return visits, nil
}
