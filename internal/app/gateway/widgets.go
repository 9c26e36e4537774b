// internal/app/gateway/widgets.go
package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/dspcoder123/admin-panel/internal/domain/models"
	"go.uber.org/zap"
)

// FetchCategories returns the widget category list.
func (c *Client) FetchCategories(ctx context.Context) ([]models.WidgetCategory, error) {
	body, err := c.get(ctx, "/widgets/categories", nil)
	if err != nil {
		return nil, err
	}

	raws, _ := decodeList(body, "categories", false)
	cats := make([]models.WidgetCategory, 0, len(raws))
	for _, raw := range raws {
		var wc models.WidgetCategory
		if err := json.Unmarshal(raw, &wc); err != nil {
			c.log.Debug("skipping malformed category record", zap.Error(err))
			continue
		}
		wc.Normalize()
		cats = append(cats, wc)
	}
	return cats, nil
}

// FetchWidgets returns widgets, optionally restricted to one category.
func (c *Client) FetchWidgets(ctx context.Context, category string) ([]models.Widget, error) {
	var q url.Values
	if category != "" {
		q = url.Values{"category": {category}}
	}
	body, err := c.get(ctx, "/widgets/widgets", q)
	if err != nil {
		return nil, err
	}

	raws, _ := decodeList(body, "widgets", false)
	widgets := make([]models.Widget, 0, len(raws))
	for _, raw := range raws {
		var w models.Widget
		if err := json.Unmarshal(raw, &w); err != nil {
			c.log.Debug("skipping malformed widget record", zap.Error(err))
			continue
		}
		w.Normalize()
		widgets = append(widgets, w)
	}
	return widgets, nil
}

// CreateWidget posts a full widget payload.
func (c *Client) CreateWidget(ctx context.Context, w models.Widget) error {
	_, err := c.do(ctx, http.MethodPost, "/widgets/widgets", nil, w)
	return err
}

// UpdateWidget replaces the widget with the given record id.
func (c *Client) UpdateWidget(ctx context.Context, id string, w models.Widget) error {
	_, err := c.do(ctx, http.MethodPut, "/widgets/widgets/"+url.PathEscape(id), nil, w)
	return err
}

// UpdateWidgetStatus flips a widget's status. Only the status field travels;
// the server owns the rest of the record.
func (c *Client) UpdateWidgetStatus(ctx context.Context, id, status string) error {
	payload := map[string]string{"visitStatus": status}
	_, err := c.do(ctx, http.MethodPatch, "/widgets/widgets/"+url.PathEscape(id)+"/status", nil, payload)
	return err
}

// CreateCategory adds a widget category.
func (c *Client) CreateCategory(ctx context.Context, name, description string) error {
	payload := map[string]string{"visitCategory": name, "description": description}
	_, err := c.do(ctx, http.MethodPost, "/widgets/categories", nil, payload)
	return err
}
