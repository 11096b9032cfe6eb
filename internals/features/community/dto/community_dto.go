package dto

type CreateForumPostRequest struct {
	Title string   `json:"title" validate:"required,max=200"`
	Body  string   `json:"body" validate:"required"`
	Tags  []string `json:"tags" validate:"omitempty,max=10,dive,max=40"`
}

type UpdateForumPostRequest struct {
	Title *string  `json:"title" validate:"omitempty,max=200"`
	Body  *string  `json:"body"`
	Tags  []string `json:"tags" validate:"omitempty,max=10,dive,max=40"`
}

type AddForumCommentRequest struct {
	Body string `json:"body" validate:"required"`
}

type CreateReviewRequest struct {
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
	Body   string `json:"body" validate:"required"`
}

type CreateFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Order    int    `json:"order" validate:"gte=0"`
}

type UpdateFAQRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Order    *int    `json:"order" validate:"omitempty,gte=0"`
}

type NewsletterSubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
