package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/stanislav-shchetinin/security-web/internal/auth"
	"github.com/stanislav-shchetinin/security-web/internal/posts"
	"github.com/stanislav-shchetinin/security-web/internal/users"
)

// Seed populates demo users and posts on first startup. It is a no-op once
// the users table has any rows, and runs in a single transaction so a crash
// mid-seed leaves nothing behind.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&users.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("seeding demo data")

	return db.Transaction(func(tx *gorm.DB) error {
		demoUsers := []struct {
			username, password, email, fullName, role string
		}{
			{"admin", "admin123", "admin@example.com", "Admin User", users.RoleAdmin},
			{"john", "password123", "john@example.com", "John Doe", users.RoleUser},
			{"jane", "password123", "jane@example.com", "Jane Smith", users.RoleUser},
		}

		byName := make(map[string]*users.User, len(demoUsers))
		for _, d := range demoUsers {
			hash, err := auth.HashPassword(d.password)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", d.username, err)
			}
			u := &users.User{
				Username:     d.username,
				PasswordHash: hash,
				Email:        d.email,
				FullName:     d.fullName,
				Role:         d.role,
				Active:       true,
			}
			if err := tx.Create(u).Error; err != nil {
				return fmt.Errorf("create user %s: %w", d.username, err)
			}
			byName[d.username] = u
		}

		demoPosts := []struct {
			title, content, author string
		}{
			{"Welcome to Security Web API",
				"This is the first post in our new API. We're using JWT authentication.",
				"admin"},
			{"Getting Started with Bearer Tokens",
				"Bearer tokens let the server stay stateless while still authenticating every request.",
				"john"},
			{"Understanding JWT Tokens",
				"JSON Web Tokens are a compact way to securely transmit information between parties.",
				"jane"},
			{"PostgreSQL with Docker",
				"Using Docker to run PostgreSQL makes database management much easier.",
				"john"},
		}

		for _, d := range demoPosts {
			p := &posts.Post{
				Title:    d.title,
				Content:  d.content,
				AuthorID: byName[d.author].ID,
			}
			if err := tx.Create(p).Error; err != nil {
				return fmt.Errorf("create post %q: %w", d.title, err)
			}
		}

		log.Println("demo data seeded: admin:admin123 (ADMIN), john:password123, jane:password123")
		return nil
	})
}
