// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"conduit/internal/domain/entity"
	"conduit/internal/usecase"
)

// View objects are the JSON shapes handlers return inside the response
// envelope. They are mapped from usecase outputs so entities (and the
// password hash in particular) never serialize directly.

// UserView is the authenticated account representation, token included.
type UserView struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// ProfileView is a user's public representation from the viewer's
// perspective.
type ProfileView struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// ArticleView is the single-article representation.
type ArticleView struct {
	Slug           string      `json:"slug"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Body           string      `json:"body"`
	TagList        []string    `json:"tagList"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	Favorited      bool        `json:"favorited"`
	FavoritesCount int32       `json:"favoritesCount"`
	Author         ProfileView `json:"author"`
}

// CommentView is the single-comment representation.
type CommentView struct {
	ID        int64       `json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Body      string      `json:"body"`
	Author    ProfileView `json:"author"`
}

func toUserView(out *usecase.AuthOutput) UserView {
	return UserView{
		Email:    out.User.Email,
		Token:    out.Token,
		Username: out.User.Username,
		Bio:      out.User.Bio,
		Image:    out.User.Image,
	}
}

func toProfileView(user *entity.User, following bool) ProfileView {
	return ProfileView{
		Username:  user.Username,
		Bio:       user.Bio,
		Image:     user.Image,
		Following: following,
	}
}

func toArticleView(out *usecase.ArticleOutput) ArticleView {
	article := out.Article

	tagList := article.TagList
	if tagList == nil {
		tagList = []string{}
	}

	var author ProfileView
	if article.Author != nil {
		author = toProfileView(article.Author, out.FollowingAuthor)
	}

	return ArticleView{
		Slug:           article.Slug,
		Title:          article.Title,
		Description:    article.Description,
		Body:           article.Body,
		TagList:        tagList,
		CreatedAt:      article.CreatedAt,
		UpdatedAt:      article.UpdatedAt,
		Favorited:      out.Favorited,
		FavoritesCount: article.FavoritesCount,
		Author:         author,
	}
}

func toCommentView(out *usecase.CommentOutput) CommentView {
	comment := out.Comment

	var author ProfileView
	if comment.Author != nil {
		author = toProfileView(comment.Author, out.FollowingAuthor)
	}

	return CommentView{
		ID:        comment.ID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		Body:      comment.Body,
		Author:    author,
	}
}
