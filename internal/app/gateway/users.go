// internal/app/gateway/users.go
package gateway

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/dspcoder123/admin-panel/internal/domain/models"
	"go.uber.org/zap"
)

// FetchUsers returns the verified user list. The response envelope is
// normalized through the fallback chain in decodeList; users additionally
// tolerate the doubly-nested {users: {data: [...]}} shape.
func (c *Client) FetchUsers(ctx context.Context) ([]models.User, error) {
	q := url.Values{"verified": {"true"}}
	body, err := c.get(ctx, "/users", q)
	if err != nil {
		return nil, err
	}

	raws, _ := decodeList(body, "users", true)
	users := make([]models.User, 0, len(raws))
	for _, raw := range raws {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			// One malformed element must not take down the list.
			c.log.Debug("skipping malformed user record", zap.Error(err))
			continue
		}
		u.Normalize()
		users = append(users, u)
	}
	return users, nil
}
