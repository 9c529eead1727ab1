package seed

import (
	"fmt"
	"log"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

var demoCategories = []string{
	"Technology", "Travel", "Food", "Science", "Culture", "Opinion",
}

// Demo populates the database with a small but realistic content set:
// a handful of authors, the standard categories, published posts and
// threaded comments. Skipped when posts already exist.
func Demo(db *gorm.DB) error {
	var postCount int64
	if err := db.Model(&models.Post{}).Count(&postCount).Error; err != nil {
		return err
	}
	if postCount > 0 {
		log.Println("demo seed skipped: posts already present")
		return nil
	}

	f := NewFactory(db)

	users, err := seedUsers(f, 8)
	if err != nil {
		return err
	}
	categories, err := seedCategories(f)
	if err != nil {
		return err
	}

	for i := 0; i < 24; i++ {
		author := users[f.rand.Intn(len(users))]
		category := categories[f.rand.Intn(len(categories))]
		post, err := f.CreatePost(author, category)
		if err != nil {
			return fmt.Errorf("seed post: %w", err)
		}

		numComments := f.rand.Intn(6)
		for j := 0; j < numComments; j++ {
			commenter := users[f.rand.Intn(len(users))]
			comment, err := f.CreateComment(commenter, post, nil)
			if err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
			// Roughly a third of comments get a reply.
			if f.rand.Intn(3) == 0 {
				replier := users[f.rand.Intn(len(users))]
				if _, err := f.CreateComment(replier, post, comment); err != nil {
					return fmt.Errorf("seed reply: %w", err)
				}
			}
		}
	}

	log.Printf("demo seed complete: %d users, %d categories, 24 posts", len(users), len(categories))
	return nil
}

func seedUsers(f *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

func seedCategories(f *Factory) ([]*models.Category, error) {
	categories := make([]*models.Category, 0, len(demoCategories))
	for _, name := range demoCategories {
		category, err := f.CreateCategory(name)
		if err != nil {
			return nil, fmt.Errorf("seed category %s: %w", name, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}
