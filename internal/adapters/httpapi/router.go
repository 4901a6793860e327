package httpapi

import (
	"context"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/internal/adapters/httpapi/middleware"
	commentPort "yatube/internal/ports/comment"
	groupPort "yatube/internal/ports/group"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"
)

// Inbound ports used by the controllers.

type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, firstName, lastName, username, email, password string) (*userPort.UserDTO, error)
	GetByUsername(ctx context.Context, username string) (*userPort.UserDTO, error)
	Authenticate(ctx context.Context, token string) (*userPort.UserDTO, error)
}

type GroupUseCase interface {
	GetBySlug(ctx context.Context, slug string) (*groupPort.GroupDTO, error)
	ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID string, in postPort.PostInput) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, postID, editorID string, in postPort.PostInput) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, postID string) (*postPort.PostDTO, error)
	ListPosts(ctx context.Context, f postPort.Filter, rawPage string) (*postPort.PostPage, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
}

type CommentUseCase interface {
	AddComment(ctx context.Context, postID, authorID, text string) (*commentPort.CommentDTO, error)
	ListComments(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error)
}

type FollowerUseCase interface {
	FollowUser(ctx context.Context, userID, authorID string) error
	UnfollowUser(ctx context.Context, userID, authorID string) error
	CountFollowers(ctx context.Context, authorID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
	IsFollowing(ctx context.Context, userID, authorID string) (bool, error)
}

type PageCacheUseCase interface {
	Fetch(ctx context.Context, key string, ttl time.Duration, render func() ([]byte, error)) ([]byte, error)
}

type MediaStore interface {
	SaveImage(fh *multipart.FileHeader) (string, error)
	Remove(name string) error
}

// Dependencies is everything SetupRoutes wires into the controllers.
type Dependencies struct {
	Users     UserUseCase
	Groups    GroupUseCase
	Posts     PostUseCase
	Comments  CommentUseCase
	Followers FollowerUseCase
	PageCache PageCacheUseCase
	Media     MediaStore
	Renderer  *Renderer
	Logger    *zap.Logger

	MediaRoot       string
	IndexCacheTTL   time.Duration
	SessionLifetime time.Duration
	CORSOrigins     []string
}

// SetupRoutes only routes: use cases are injected from outside.
func SetupRoutes(d Dependencies) *gin.Engine {
	RegisterValidators()

	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	v := &view{renderer: d.Renderer, logger: d.Logger}

	r := gin.New()
	r.Use(middleware.AccessLog(d.Logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		d.Logger.Error("Panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		v.html(c, http.StatusInternalServerError, tplError, gin.H{})
	}))
	if len(d.CORSOrigins) > 0 {
		r.Use(middleware.CORS(d.CORSOrigins))
	}
	r.Use(middleware.SessionMiddleware(d.Users))

	if d.MediaRoot != "" {
		r.Static("/media", d.MediaRoot)
	}

	pc := NewPostController(v, d.Posts, d.Groups, d.Users, d.Comments, d.Followers, d.PageCache, d.Media, d.IndexCacheTTL)
	cc := NewCommentController(v, d.Comments)
	fc := NewFollowerController(v, d.Users, d.Followers)
	uc := NewUserController(v, d.Users, d.SessionLifetime)
	sc := NewStaticController(v)

	r.GET("/", pc.Index)
	r.GET("/group/:slug/", pc.GroupPosts)
	r.GET("/profile/:username/", pc.Profile)
	r.GET("/posts/:id/", pc.PostDetail)

	auth := r.Group("/", middleware.LoginRequired())
	{
		auth.GET("/create/", pc.PostCreate)
		auth.POST("/create/", pc.PostCreate)
		auth.GET("/posts/:id/edit/", pc.PostEdit)
		auth.POST("/posts/:id/edit/", pc.PostEdit)
		auth.GET("/posts/:id/comment/", cc.AddComment)
		auth.POST("/posts/:id/comment/", cc.AddComment)
		auth.GET("/follow/", pc.FollowIndex)
		auth.GET("/profile/:username/follow/", fc.FollowUser)
		auth.POST("/profile/:username/follow/", fc.FollowUser)
		auth.GET("/profile/:username/unfollow/", fc.UnfollowUser)
		auth.POST("/profile/:username/unfollow/", fc.UnfollowUser)
	}

	r.GET("/auth/signup/", uc.Signup)
	r.POST("/auth/signup/", uc.Signup)
	r.GET("/auth/login/", uc.Login)
	r.POST("/auth/login/", uc.Login)
	r.GET("/auth/logout/", uc.Logout)
	r.POST("/auth/logout/", uc.Logout)

	r.GET("/about/author/", sc.Author)
	r.GET("/about/tech/", sc.Tech)

	r.NoRoute(sc.NotFound)
	return r
}
