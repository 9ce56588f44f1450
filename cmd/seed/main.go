package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"foodcourt/internal/domain"
	"foodcourt/internal/infra/mealdb"
	mmysql "foodcourt/internal/infra/mysql"
	mysqlrepo "foodcourt/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

// Seeds demo sellers, kitchens and foods. Dish names and images come
// from TheMealDB; everything else is generated locally. Safe to run
// against an empty database only (emails are fixed and unique).
const (
	numSellers        = 12
	kitchensPerSeller = 4
	foodsMin          = 8
	foodsMax          = 12
	demoPassword      = "demoSeller123"
)

var sellerNames = []string{
	"Amara Osei", "Bruno Kovac", "Chen Wei", "Daniela Ruiz",
	"Elif Demir", "Farid Rahimi", "Grace Njoku", "Hiro Tanaka",
	"Ines Moreau", "Jonas Berg", "Kavya Iyer", "Luca Romano",
}

var kitchenStyles = []string{
	"Corner Kitchen", "Home Plates", "Street Wok", "Family Table",
	"Night Grill", "Spice House", "Daily Bowl", "Garden Cafe",
}

func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	users := mysqlrepo.NewUserRepository(db)
	kitchens := mysqlrepo.NewKitchenRepository(db)
	foods := mysqlrepo.NewFoodRepository(db)

	ctx := context.Background()

	client := mealdb.NewClient("", 10*time.Second)
	meals, err := client.SearchMeals(ctx, "rice")
	if err != nil || len(meals) == 0 {
		log.Printf("no meals from TheMealDB (%v), using placeholders", err)
		meals = placeholderMeals(20)
	}
	log.Printf("collected %d meals", len(meals))

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash demo password: %v", err)
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i := 0; i < numSellers; i++ {
		i := i
		g.Go(func() error {
			seller := &domain.User{
				Name:         sellerNames[i%len(sellerNames)],
				Email:        fmt.Sprintf("seller%02d@foodcourt.demo", i+1),
				PasswordHash: string(hash),
				Role:         domain.RoleSeller,
			}
			if err := users.Save(seller); err != nil {
				return fmt.Errorf("seed seller %d: %w", i+1, err)
			}

			for k := 0; k < kitchensPerSeller; k++ {
				kitchen := &domain.Kitchen{
					Name:      fmt.Sprintf("%s's %s", firstName(seller.Name), kitchenStyles[rand.Intn(len(kitchenStyles))]),
					OwnerID:   seller.ID,
					OwnerName: seller.Name,
					Rating:    roundTo(3+rand.Float64()*2, 1),
				}
				if err := kitchens.Save(kitchen); err != nil {
					return fmt.Errorf("seed kitchen for seller %d: %w", i+1, err)
				}

				n := foodsMin + rand.Intn(foodsMax-foodsMin+1)
				for j := 0; j < n; j++ {
					m := meals[rand.Intn(len(meals))]
					food := &domain.Food{
						Name:         m.Name,
						KitchenID:    kitchen.ID,
						KitchenName:  kitchen.Name,
						Price:        roundTo(100+rand.Float64()*400, 2),
						Description:  fmt.Sprintf("%s, made fresh at %s", m.Name, kitchen.Name),
						Quantity:     10 + rand.Int63n(40),
						DeliveryTime: 15 + rand.Intn(46),
						ImageURL:     m.ThumbURL,
					}
					if err := foods.Save(food); err != nil {
						return fmt.Errorf("seed food for seller %d: %w", i+1, err)
					}
				}
			}

			log.Printf("seeded %s with %d kitchens", seller.Email, kitchensPerSeller)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("demo data seeded")
}

func placeholderMeals(n int) []mealdb.Meal {
	out := make([]mealdb.Meal, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, mealdb.Meal{
			Name:     fmt.Sprintf("Rice Dish %d", i+1),
			ThumbURL: "https://via.placeholder.com/200",
		})
	}
	return out
}

func firstName(full string) string {
	for i, r := range full {
		if r == ' ' {
			return full[:i]
		}
	}
	return full
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
