package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/adapters/storage"
	groupEntity "yatube/internal/core/group"
	pagecacheapp "yatube/internal/core/pagecache/service"
	postEntity "yatube/internal/core/post"
	postapp "yatube/internal/core/post/service"
	userEntity "yatube/internal/core/user"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"
)

const (
	titleNewPost  = "New post"
	titleEditPost = "Edit post"
)

type PostController struct {
	v         *view
	posts     PostUseCase
	groups    GroupUseCase
	users     UserUseCase
	comments  CommentUseCase
	followers FollowerUseCase
	cache     PageCacheUseCase
	media     MediaStore
	cacheTTL  time.Duration
}

func NewPostController(
	v *view,
	posts PostUseCase,
	groups GroupUseCase,
	users UserUseCase,
	comments CommentUseCase,
	followers FollowerUseCase,
	cache PageCacheUseCase,
	media MediaStore,
	cacheTTL time.Duration,
) *PostController {
	if cacheTTL <= 0 {
		cacheTTL = pagecacheapp.DefaultTTL
	}
	return &PostController{
		v:         v,
		posts:     posts,
		groups:    groups,
		users:     users,
		comments:  comments,
		followers: followers,
		cache:     cache,
		media:     media,
		cacheTTL:  cacheTTL,
	}
}

// Index serves the home feed. The rendered page is shared by every
// visitor for cacheTTL, so it is rendered without a session user.
func (ctl *PostController) Index(c *gin.Context) {
	ctx := c.Request.Context()
	key := pagecacheapp.Key(pagecacheapp.IndexKeyPrefix, c.Request.URL.RequestURI())

	body, err := ctl.cache.Fetch(ctx, key, ctl.cacheTTL, func() ([]byte, error) {
		page, err := ctl.posts.ListPosts(ctx, postPort.Filter{}, c.Query("page"))
		if err != nil {
			return nil, err
		}
		return ctl.v.page(c, tplIndex, gin.H{
			"User":    (*userPort.UserDTO)(nil),
			"PageObj": page,
		})
	})
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}
	c.Data(http.StatusOK, contentTypeHTML, body)
}

func (ctl *PostController) GroupPosts(c *gin.Context) {
	ctx := c.Request.Context()
	group, err := ctl.groups.GetBySlug(ctx, c.Param("slug"))
	if errors.Is(err, groupEntity.ErrNotFound) {
		ctl.v.notFound(c)
		return
	}
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}

	page, err := ctl.posts.ListPosts(ctx, postPort.Filter{GroupID: group.ID}, c.Query("page"))
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}
	ctl.v.html(c, http.StatusOK, tplGroupList, gin.H{
		"Group":   group,
		"PageObj": page,
	})
}

func (ctl *PostController) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	author, err := ctl.users.GetByUsername(ctx, c.Param("username"))
	if errors.Is(err, userEntity.ErrNotFound) {
		ctl.v.notFound(c)
		return
	}
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}

	page, err := ctl.posts.ListPosts(ctx, postPort.Filter{AuthorID: author.ID}, c.Query("page"))
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}
	followers, err := ctl.followers.CountFollowers(ctx, author.ID)
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}
	following, err := ctl.followers.CountFollowing(ctx, author.ID)
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}

	isFollowing := false
	if u := middleware.CurrentUser(c); u != nil {
		if isFollowing, err = ctl.followers.IsFollowing(ctx, u.ID, author.ID); err != nil {
			ctl.v.serverError(c, err)
			return
		}
	}

	ctl.v.html(c, http.StatusOK, tplProfile, gin.H{
		"Author":         author,
		"PageObj":        page,
		"PostsCount":     page.Page.Count,
		"FollowersCount": followers,
		"FollowingCount": following,
		"Following":      isFollowing,
	})
}

func (ctl *PostController) PostDetail(c *gin.Context) {
	ctx := c.Request.Context()
	post, ok := ctl.loadPost(c)
	if !ok {
		return
	}

	comments, err := ctl.comments.ListComments(ctx, post.ID)
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}
	count, err := ctl.posts.CountByAuthor(ctx, post.AuthorID)
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}

	ctl.v.html(c, http.StatusOK, tplDetail, gin.H{
		"Post":             post,
		"Comments":         comments,
		"AuthorPostsCount": count,
		"Form":             CommentForm{},
	})
}

func (ctl *PostController) PostCreate(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if c.Request.Method != http.MethodPost {
		ctl.renderForm(c, gin.H{"Title": titleNewPost, "IsEdit": false, "Form": PostForm{}})
		return
	}

	var form PostForm
	in, errs := ctl.bindPostForm(c, &form)
	if len(errs) == 0 {
		_, err := ctl.posts.CreatePost(c.Request.Context(), user.ID, in)
		if err == nil {
			c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
			return
		}
		ctl.discardImage(in)
		if errs = serviceErrors(err); errs == nil {
			ctl.v.serverError(c, err)
			return
		}
	}
	ctl.renderForm(c, gin.H{"Title": titleNewPost, "IsEdit": false, "Form": form, "Errors": errs})
}

// PostEdit lets the author change a post. Everybody else is sent back
// to the post page.
func (ctl *PostController) PostEdit(c *gin.Context) {
	user := middleware.CurrentUser(c)
	post, ok := ctl.loadPost(c)
	if !ok {
		return
	}
	detailURL := "/posts/" + post.ID + "/"
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	data := gin.H{"Title": titleEditPost, "IsEdit": true, "Post": post}
	if c.Request.Method != http.MethodPost {
		form := PostForm{Text: post.Text}
		if post.Group != nil {
			form.Group = post.Group.ID
		}
		data["Form"] = form
		ctl.renderForm(c, data)
		return
	}

	var form PostForm
	in, errs := ctl.bindPostForm(c, &form)
	if len(errs) == 0 {
		_, err := ctl.posts.UpdatePost(c.Request.Context(), post.ID, user.ID, in)
		if err == nil {
			c.Redirect(http.StatusFound, detailURL)
			return
		}
		ctl.discardImage(in)
		if errors.Is(err, postEntity.ErrNotAuthor) {
			c.Redirect(http.StatusFound, detailURL)
			return
		}
		if errs = serviceErrors(err); errs == nil {
			ctl.v.serverError(c, err)
			return
		}
	}
	data["Form"] = form
	data["Errors"] = errs
	ctl.renderForm(c, data)
}

func (ctl *PostController) FollowIndex(c *gin.Context) {
	user := middleware.CurrentUser(c)
	page, err := ctl.posts.ListPosts(c.Request.Context(), postPort.Filter{FollowerID: user.ID}, c.Query("page"))
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}
	ctl.v.html(c, http.StatusOK, tplFollow, gin.H{"PageObj": page})
}

// bindPostForm validates the submitted form and stores an uploaded image.
func (ctl *PostController) bindPostForm(c *gin.Context, form *PostForm) (postPort.PostInput, FormErrors) {
	errs := FormErrors{}
	if err := c.ShouldBind(form); err != nil {
		errs = bindErrors(err)
	}

	in := postPort.PostInput{
		Text:       form.Text,
		GroupID:    form.Group,
		ClearImage: form.ClearImage != "",
	}

	fh, err := c.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		ctl.v.logger.Debug("No image in request", zap.Error(err))
	case len(errs) == 0:
		name, err := ctl.media.SaveImage(fh)
		if err != nil {
			if errors.Is(err, storage.ErrNotImage) || errors.Is(err, storage.ErrImageTooLarge) {
				errs["image"] = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
			} else {
				errs["form"] = "The image could not be saved."
				ctl.v.logger.Error("Image upload failed", zap.Error(err))
			}
			break
		}
		in.Image = name
	}
	return in, errs
}

// discardImage removes an upload whose post was never saved.
func (ctl *PostController) discardImage(in postPort.PostInput) {
	if in.Image == "" {
		return
	}
	if err := ctl.media.Remove(in.Image); err != nil {
		ctl.v.logger.Warn("Orphaned image not removed", zap.String("name", in.Image), zap.Error(err))
	}
}

func (ctl *PostController) renderForm(c *gin.Context, data gin.H) {
	groups, err := ctl.groups.ListGroups(c.Request.Context())
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}
	data["Groups"] = groups
	data["EmptyGroupLabel"] = EmptyGroupLabel
	ctl.v.html(c, http.StatusOK, tplPostForm, data)
}

// loadPost writes the 404 page when the post does not exist.
func (ctl *PostController) loadPost(c *gin.Context) (*postPort.PostDTO, bool) {
	post, err := ctl.posts.GetPost(c.Request.Context(), c.Param("id"))
	if errors.Is(err, postEntity.ErrNotFound) {
		ctl.v.notFound(c)
		return nil, false
	}
	if err != nil {
		ctl.v.serverError(c, err)
		return nil, false
	}
	return post, true
}

// serviceErrors maps validation errors from the post service onto form
// fields; nil means err is not a validation error.
func serviceErrors(err error) FormErrors {
	switch {
	case errors.Is(err, postEntity.ErrEmptyText):
		return FormErrors{"text": msgRequired}
	case errors.Is(err, postapp.ErrUnknownGroup):
		return FormErrors{"group": msgInvalidChoice}
	}
	return nil
}
