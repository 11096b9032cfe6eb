package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ForumPost struct {
	ForumPostID uuid.UUID `gorm:"column:forum_post_id;type:uuid;default:gen_random_uuid();primaryKey" json:"forum_post_id"`

	ForumPostTitle       string         `gorm:"column:forum_post_title;type:varchar(200);not null" json:"forum_post_title"`
	ForumPostBody        string         `gorm:"column:forum_post_body;type:text;not null" json:"forum_post_body"`
	ForumPostAuthorEmail string         `gorm:"column:forum_post_author_email;type:varchar(120);not null;index" json:"forum_post_author_email"`
	ForumPostTags        pq.StringArray `gorm:"column:forum_post_tags;type:text[]" json:"forum_post_tags,omitempty"`

	// Comments stay embedded, appended in place — the thread is always
	// fetched whole.
	ForumPostComments datatypes.JSON `gorm:"column:forum_post_comments;type:jsonb" json:"forum_post_comments,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ForumPost) TableName() string { return "forum_posts" }

type ForumComment struct {
	CommentID   string    `json:"comment_id"`
	AuthorEmail string    `json:"author_email"`
	Body        string    `json:"body"`
	PostedAt    time.Time `json:"posted_at"`
}

func DecodeComments(raw datatypes.JSON) ([]ForumComment, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var comments []ForumComment
	if err := json.Unmarshal(raw, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func EncodeComments(comments []ForumComment) (datatypes.JSON, error) {
	raw, err := json.Marshal(comments)
	if err != nil {
		return nil, err
	}
	return raw, nil
}
