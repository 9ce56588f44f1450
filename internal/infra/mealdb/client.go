package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// Meal is the subset of a TheMealDB record the demo seeder uses.
type Meal struct {
	Name     string
	ThumbURL string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SearchMeals queries the free-text search endpoint. Meals without a
// name or thumbnail are dropped.
func (c *Client) SearchMeals(ctx context.Context, query string) ([]Meal, error) {
	u := fmt.Sprintf("%s/search.php?s=%s", c.baseURL, url.QueryEscape(query))
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mealdb returned status %d", resp.StatusCode)
	}

	var body struct {
		Meals []struct {
			StrMeal      string `json:"strMeal"`
			StrMealThumb string `json:"strMealThumb"`
		} `json:"meals"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	var meals []Meal
	for _, m := range body.Meals {
		if m.StrMeal == "" || m.StrMealThumb == "" {
			continue
		}
		meals = append(meals, Meal{Name: m.StrMeal, ThumbURL: m.StrMealThumb})
	}
	return meals, nil
}
