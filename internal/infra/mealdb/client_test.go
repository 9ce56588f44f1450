package mealdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_SearchMeals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.php", r.URL.Path)
		assert.Equal(t, "rice", r.URL.Query().Get("s"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"meals":[
			{"strMeal":"Nasi Goreng","strMealThumb":"https://example.com/nasi.jpg"},
			{"strMeal":"","strMealThumb":"https://example.com/skip.jpg"},
			{"strMeal":"Rice Pudding","strMealThumb":"https://example.com/pudding.jpg"}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	meals, err := client.SearchMeals(context.Background(), "rice")

	assert.NoError(t, err)
	assert.Len(t, meals, 2, "meals without a name are dropped")
	assert.Equal(t, "Nasi Goreng", meals[0].Name)
	assert.Equal(t, "https://example.com/pudding.jpg", meals[1].ThumbURL)
}

func TestClient_SearchMeals_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":null}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	meals, err := client.SearchMeals(context.Background(), "nothing")

	assert.NoError(t, err)
	assert.Empty(t, meals)
}

func TestClient_SearchMeals_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.SearchMeals(context.Background(), "rice")

	assert.Error(t, err)
}
