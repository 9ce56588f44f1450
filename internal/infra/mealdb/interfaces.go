package mealdb

import "context"

type ClientInterface interface {
	SearchMeals(ctx context.Context, query string) ([]Meal, error)
}

var _ ClientInterface = (*Client)(nil)
