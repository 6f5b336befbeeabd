package domain

import (
	"errors"
	"time"
)

// DefaultCategory is assigned to posts created without an explicit category.
const DefaultCategory = "General"

// DefaultAuthor is assigned when no authenticated username is available.
const DefaultAuthor = "HR Team"

var ErrPostNotFound = errors.New("post not found")
var ErrMissingTitleOrContent = errors.New("title and content are required")

// NewsPost is a published announcement on the employee portal.
// IDs are assigned by the store and strictly increasing. ImagePath, when
// set, is the relative path of an attachment under the upload root.
type NewsPost struct {
	ID        int       `bson:"_id"`
	Title     string    `bson:"title"`
	Category  string    `bson:"category"`
	Content   string    `bson:"content"`
	ImagePath string    `bson:"image_path,omitempty"`
	Author    string    `bson:"author"`
	Timestamp time.Time `bson:"timestamp"`
}
