package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	communityController "pawmart_backend/internals/features/community/controller"
	authMw "pawmart_backend/internals/middlewares/auth"
)

// CommunityRoutes: public forum browsing, reviews, FAQs, newsletter signup.
func CommunityRoutes(api fiber.Router, db *gorm.DB) {
	forumCtrl := communityController.NewForumController(db)
	reviewCtrl := communityController.NewReviewController(db)
	faqCtrl := communityController.NewFAQController(db)
	newsCtrl := communityController.NewNewsletterController(db)

	api.Get("/forums", forumCtrl.ListPosts)
	api.Get("/forums/:id", forumCtrl.GetPost)

	api.Get("/reviews", reviewCtrl.ListReviews)
	api.Get("/faqs", faqCtrl.ListFAQs)
	api.Post("/newsletter", newsCtrl.Subscribe)
}

// CommunityUserRoutes: authoring for logged-in users.
func CommunityUserRoutes(api fiber.Router, db *gorm.DB) {
	forumCtrl := communityController.NewForumController(db)
	reviewCtrl := communityController.NewReviewController(db)

	api.Post("/forums", forumCtrl.CreatePost)
	api.Patch("/forums/:id", forumCtrl.UpdatePost)
	api.Delete("/forums/:id", forumCtrl.DeletePost)
	api.Post("/forums/:id/comments", forumCtrl.AddComment)

	api.Post("/reviews", reviewCtrl.CreateReview)
	api.Delete("/reviews/:id", reviewCtrl.DeleteReview)
}

// CommunityAdminRoutes: FAQ curation and the subscriber list.
func CommunityAdminRoutes(api fiber.Router, db *gorm.DB) {
	faqCtrl := communityController.NewFAQController(db)
	newsCtrl := communityController.NewNewsletterController(db)
	adminOnly := authMw.OnlyRoles("Only admins may manage this resource", "admin")

	api.Post("/faqs", adminOnly, faqCtrl.CreateFAQ)
	api.Patch("/faqs/:id", adminOnly, faqCtrl.UpdateFAQ)
	api.Delete("/faqs/:id", adminOnly, faqCtrl.DeleteFAQ)

	api.Get("/newsletter", adminOnly, newsCtrl.ListSubscribers)
}
