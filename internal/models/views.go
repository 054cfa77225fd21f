package models

import "time"

// Read views are the transfer representations sent to clients. Field
// membership is fixed at compile time: write-only inputs (tag_ids, password)
// have no field here, computed counts have no writable counterpart.

// UserRef is the compact author/user reference embedded in other views.
type UserRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// UserView is the full user representation (password hash never included).
type UserView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TagView is the tag representation.
type TagView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CommentView is the comment representation.
type CommentView struct {
	ID        uint      `json:"id"`
	Post      uint      `json:"post"`
	Author    UserRef   `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PostView is the post representation, including nested author, tags,
// comments and the computed relationship counts.
type PostView struct {
	ID             uint          `json:"id"`
	Title          string        `json:"title"`
	Content        string        `json:"content"`
	ImageURL       string        `json:"image_url,omitempty"`
	Author         UserRef       `json:"author"`
	Tags           []TagView     `json:"tags"`
	Comments       []CommentView `json:"comments"`
	LikesCount     int           `json:"likes_count"`
	FavoritesCount int           `json:"favorites_count"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// LikeView is the like representation.
type LikeView struct {
	ID        uint      `json:"id"`
	Post      uint      `json:"post"`
	User      UserRef   `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoriteView is the favorite representation.
type FavoriteView struct {
	ID        uint      `json:"id"`
	Post      uint      `json:"post"`
	User      UserRef   `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserRef maps a User to its compact reference.
func NewUserRef(u User) UserRef {
	return UserRef{ID: u.ID, Username: u.Username}
}

// NewUserView maps a User to its full representation.
func NewUserView(u *User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// NewTagView maps a Tag.
func NewTagView(t Tag) TagView {
	return TagView{ID: t.ID, Name: t.Name}
}

// NewTagViews maps a slice of tags, returning an empty (non-nil) slice for
// none so that JSON renders [] rather than null.
func NewTagViews(tags []Tag) []TagView {
	views := make([]TagView, 0, len(tags))
	for _, t := range tags {
		views = append(views, NewTagView(t))
	}
	return views
}

// NewCommentView maps a Comment with its preloaded author.
func NewCommentView(cm *Comment) CommentView {
	return CommentView{
		ID:        cm.ID,
		Post:      cm.PostID,
		Author:    NewUserRef(cm.Author),
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
	}
}

// NewCommentViews maps a slice of comments.
func NewCommentViews(comments []Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, NewCommentView(&comments[i]))
	}
	return views
}

// NewPostView maps a Post with preloaded author, tags and comments.
func NewPostView(p *Post) PostView {
	return PostView{
		ID:             p.ID,
		Title:          p.Title,
		Content:        p.Content,
		ImageURL:       p.ImageURL,
		Author:         NewUserRef(p.Author),
		Tags:           NewTagViews(p.Tags),
		Comments:       NewCommentViews(p.Comments),
		LikesCount:     p.LikesCount,
		FavoritesCount: p.FavoritesCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// NewPostViews maps a slice of posts.
func NewPostViews(posts []*Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, NewPostView(p))
	}
	return views
}

// NewLikeView maps a Like with its preloaded user.
func NewLikeView(l *Like) LikeView {
	return LikeView{
		ID:        l.ID,
		Post:      l.PostID,
		User:      NewUserRef(l.User),
		CreatedAt: l.CreatedAt,
	}
}

// NewLikeViews maps a slice of likes.
func NewLikeViews(likes []*Like) []LikeView {
	views := make([]LikeView, 0, len(likes))
	for _, l := range likes {
		views = append(views, NewLikeView(l))
	}
	return views
}

// NewFavoriteView maps a Favorite with its preloaded user.
func NewFavoriteView(f *Favorite) FavoriteView {
	return FavoriteView{
		ID:        f.ID,
		Post:      f.PostID,
		User:      NewUserRef(f.User),
		CreatedAt: f.CreatedAt,
	}
}

// NewFavoriteViews maps a slice of favorites.
func NewFavoriteViews(favorites []*Favorite) []FavoriteView {
	views := make([]FavoriteView, 0, len(favorites))
	for _, f := range favorites {
		views = append(views, NewFavoriteView(f))
	}
	return views
}
