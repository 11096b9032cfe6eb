package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pawmart_backend/internals/features/community/dto"
	"pawmart_backend/internals/features/community/model"
	helper "pawmart_backend/internals/helpers"
)

type ForumController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewForumController(db *gorm.DB) *ForumController {
	return &ForumController{DB: db, Validate: validator.New()}
}

// GET /api/public/forums — ?tag= filter
func (ctrl *ForumController) ListPosts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ForumPost{})
	if tag := c.Query("tag"); tag != "" {
		q = q.Where("? = ANY(forum_post_tags)", tag)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count posts")
	}
	var posts []model.ForumPost
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list posts")
	}
	return helper.JsonList(c, "", posts, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/public/forums/:id
func (ctrl *ForumController) GetPost(c *fiber.Ctx) error {
	var post model.ForumPost
	if err := ctrl.DB.Where("forum_post_id = ?", c.Params("id")).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load post")
	}
	return helper.JsonOK(c, "", post)
}

// POST /api/u/forums
func (ctrl *ForumController) CreatePost(c *fiber.Ctx) error {
	var body dto.CreateForumPostRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	email := helper.GetUserEmail(c)
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing account email")
	}

	post := model.ForumPost{
		ForumPostTitle:       body.Title,
		ForumPostBody:        body.Body,
		ForumPostAuthorEmail: email,
		ForumPostTags:        body.Tags,
	}
	if err := ctrl.DB.Create(&post).Error; err != nil {
		log.Println("[ERROR] create forum post:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create post")
	}
	return helper.JsonCreated(c, "", post)
}

// PATCH /api/u/forums/:id — only the author or an admin
func (ctrl *ForumController) UpdatePost(c *fiber.Ctx) error {
	var body dto.UpdateForumPostRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var post model.ForumPost
	if err := ctrl.DB.Where("forum_post_id = ?", c.Params("id")).First(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
	}
	if !helper.IsAdmin(c) && post.ForumPostAuthorEmail != helper.GetUserEmail(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author may edit this post")
	}

	updates := map[string]any{}
	if body.Title != nil {
		updates["forum_post_title"] = *body.Title
	}
	if body.Body != nil {
		updates["forum_post_body"] = *body.Body
	}
	if body.Tags != nil {
		updates["forum_post_tags"] = pq.StringArray(body.Tags)
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&post).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update post")
		}
	}
	return helper.JsonUpdated(c, "", post)
}

// DELETE /api/u/forums/:id
func (ctrl *ForumController) DeletePost(c *fiber.Ctx) error {
	var post model.ForumPost
	if err := ctrl.DB.Where("forum_post_id = ?", c.Params("id")).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load post")
	}
	if !helper.IsAdmin(c) && post.ForumPostAuthorEmail != helper.GetUserEmail(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author may remove this post")
	}
	if err := ctrl.DB.Delete(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not delete post")
	}
	return helper.JsonDeleted(c, "", nil)
}

// POST /api/u/forums/:id/comments — append under a row lock so two
// commenters cannot clobber each other's entry
func (ctrl *ForumController) AddComment(c *fiber.Ctx) error {
	var body dto.AddForumCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	email := helper.GetUserEmail(c)
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing account email")
	}

	var post model.ForumPost
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("forum_post_id = ?", c.Params("id")).
			First(&post).Error; err != nil {
			return err
		}
		comments, err := model.DecodeComments(post.ForumPostComments)
		if err != nil {
			return err
		}
		comments = append(comments, model.ForumComment{
			CommentID:   uuid.NewString(),
			AuthorEmail: email,
			Body:        body.Body,
			PostedAt:    time.Now().UTC(),
		})
		raw, err := model.EncodeComments(comments)
		if err != nil {
			return err
		}
		post.ForumPostComments = raw
		return tx.Model(&post).UpdateColumn("forum_post_comments", raw).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		log.Println("[ERROR] add forum comment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not add comment")
	}
	return helper.JsonCreated(c, "Comment added", post)
}
