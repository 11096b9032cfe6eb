package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ReviewID uuid.UUID `gorm:"column:review_id;type:uuid;default:gen_random_uuid();primaryKey" json:"review_id"`

	ReviewAuthorEmail string `gorm:"column:review_author_email;type:varchar(120);not null;index" json:"review_author_email"`
	ReviewAuthorName  string `gorm:"column:review_author_name;type:varchar(120);not null" json:"review_author_name"`
	ReviewRating      int    `gorm:"column:review_rating;not null;check:review_rating BETWEEN 1 AND 5" json:"review_rating"`
	ReviewBody        string `gorm:"column:review_body;type:text;not null" json:"review_body"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Review) TableName() string { return "reviews" }

type FAQ struct {
	FAQID uuid.UUID `gorm:"column:faq_id;type:uuid;default:gen_random_uuid();primaryKey" json:"faq_id"`

	FAQQuestion string `gorm:"column:faq_question;type:text;not null" json:"faq_question"`
	FAQAnswer   string `gorm:"column:faq_answer;type:text;not null" json:"faq_answer"`
	FAQOrder    int    `gorm:"column:faq_order;not null;default:0" json:"faq_order"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (FAQ) TableName() string { return "faqs" }

type NewsletterSubscriber struct {
	NewsletterSubscriberID uuid.UUID `gorm:"column:newsletter_subscriber_id;type:uuid;default:gen_random_uuid();primaryKey" json:"newsletter_subscriber_id"`

	NewsletterSubscriberEmail string `gorm:"column:newsletter_subscriber_email;type:varchar(120);not null;uniqueIndex" json:"newsletter_subscriber_email"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (NewsletterSubscriber) TableName() string { return "newsletter_subscribers" }
