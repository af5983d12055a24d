package googlebooks

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const defaultLimit = 5

// Search queries the volumes API by title, optionally narrowed by
// author, and returns up to five suggestions ordered as the API returns
// them. An empty result is not an error.
func (c *Client) Search(ctx context.Context, title, author string) ([]Suggestion, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil
	}

	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	query := "intitle:" + title
	if author = strings.TrimSpace(author); author != "" {
		query += " inauthor:" + author
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprintf("%d", defaultLimit))
	params.Set("printType", "books")

	searchURL := c.baseURL + "/volumes?" + params.Encode()

	c.logger.Debug("searching Google Books", "query", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search failed: status %d", resp.StatusCode)
	}

	var searchResp volumesResponse
	if err := json.UnmarshalRead(resp.Body, &searchResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	c.logger.Debug("Google Books search results", "query", query, "count", searchResp.TotalItems)

	suggestions := make([]Suggestion, 0, len(searchResp.Items))
	for i := range searchResp.Items {
		v := &searchResp.Items[i]
		if v.VolumeInfo.Title == "" {
			continue
		}
		suggestions = append(suggestions, suggestionFromVolume(v))
	}
	return suggestions, nil
}

// BestMatch returns the first suggestion for the query, or ok=false when
// nothing matched.
func (c *Client) BestMatch(ctx context.Context, title, author string) (Suggestion, bool, error) {
	suggestions, err := c.Search(ctx, title, author)
	if err != nil {
		return Suggestion{}, false, err
	}
	if len(suggestions) == 0 {
		return Suggestion{}, false, nil
	}
	return suggestions[0], true, nil
}

func suggestionFromVolume(v *volume) Suggestion {
	s := Suggestion{
		ID:        v.ID,
		Title:     v.VolumeInfo.Title,
		PageCount: v.VolumeInfo.PageCount,
	}
	if len(v.VolumeInfo.Authors) > 0 {
		s.Author = strings.Join(v.VolumeInfo.Authors, ", ")
	}
	if len(v.VolumeInfo.Categories) > 0 {
		s.Category = v.VolumeInfo.Categories[0]
	}

	// Prefer the larger thumbnail; the API serves http URLs, upgrade them.
	cover := v.VolumeInfo.ImageLinks.Thumbnail
	if cover == "" {
		cover = v.VolumeInfo.ImageLinks.SmallThumbnail
	}
	s.CoverURL = strings.Replace(cover, "http://", "https://", 1)
	return s
}
