// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/slug"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password assigned to every generated account.
const DefaultPassword = "InkwellDemo123!"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{db: db, rand: rand.New(rand.NewSource(seed))}
}

// CreateUser constructs and persists a sample user with the default role.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	var userRole models.Role
	if err := f.db.Where("name = ?", models.RoleUser).First(&userRole).Error; err != nil {
		return nil, fmt.Errorf("default role missing, run role seeding first: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: string(hashed),
		RoleID:   userRole.ID,
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		IsActive: true,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCategory constructs and persists a sample category.
func (f *Factory) CreateCategory(name string, overrides ...func(*models.Category)) (*models.Category, error) {
	category := &models.Category{
		Name:        name,
		Slug:        slug.Make(name),
		Description: gofakeit.Sentence(8),
		IsActive:    true,
	}
	for _, override := range overrides {
		override(category)
	}
	if err := f.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// CreatePost constructs and persists a published post with a realistic
// created_at spread over the last 90 days.
func (f *Factory) CreatePost(user *models.User, category *models.Category, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:      gofakeit.Sentence(5),
		Content:    gofakeit.Paragraph(2, 4, 8, "\n\n"),
		Excerpt:    gofakeit.Sentence(12),
		UserID:     user.ID,
		CategoryID: category.ID,
		Tags:       models.StringList{gofakeit.HackerNoun(), gofakeit.HackerNoun()},
		Status:     models.PostStatusPublished,
		ViewCount:  f.rand.Intn(500),
	}

	daysBack := f.rand.Intn(90)
	hoursBack := f.rand.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a comment, optionally as a reply.
func (f *Factory) CreateComment(user *models.User, post *models.Post, parent *models.Comment, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content:    gofakeit.Sentence(f.rand.Intn(15) + 5),
		UserID:     user.ID,
		PostID:     post.ID,
		IsApproved: true,
	}
	if parent != nil {
		comment.ParentID = &parent.ID
	}
	for _, override := range overrides {
		override(comment)
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
