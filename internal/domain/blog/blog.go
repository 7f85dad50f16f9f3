package blog

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("blog not found")
	ErrInvalidID = errors.New("invalid blog id")
)

type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Image     string             `bson:"image" json:"image"`
	Date      string             `bson:"date" json:"date"`
	ReadTime  string             `bson:"readTime" json:"readTime"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}

// CreateBlogRequest carries the five fields every post must have.
type CreateBlogRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Image    string `json:"image" binding:"required"`
	Date     string `json:"date" binding:"required"`
	ReadTime string `json:"readTime" binding:"required"`
}

func NewFromCreateRequest(req CreateBlogRequest) Blog {
	return Blog{
		Title:     req.Title,
		Content:   req.Content,
		Image:     req.Image,
		Date:      req.Date,
		ReadTime:  req.ReadTime,
		CreatedAt: time.Now().UnixMilli(),
	}
}
