package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/TokDenis/post-store/config"
	"github.com/TokDenis/post-store/types"
	"github.com/kataras/go-sessions/v3"
	"github.com/lab259/cors"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttprouter"
)

type Api struct {
	auth     *Auth
	posts    *Posts
	token    *Tokens
	stats    *Stats
	comments *Comments
	server   *fasthttp.Server
}

const (
	TokenKey = "x-token"
)

func NewApi(cfg *config.Config, posts *Posts, stats *Stats, comments *Comments) *Api {
	r := fasthttprouter.New()

	cs := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			fasthttp.MethodHead,
			fasthttp.MethodGet,
			fasthttp.MethodPost,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	api := Api{
		auth:     NewAuth(cfg.AdminWord),
		posts:    posts,
		token:    NewTokens(),
		stats:    stats,
		comments: comments,
	}

	api.server = &fasthttp.Server{
		ReadTimeout:  time.Second * 5,
		IdleTimeout:  time.Second * 5,
		WriteTimeout: time.Second * 5,
		Handler:      cs.Handler(r.Handler),
	}

	r.POST("/api/v1/auth/login", api.LoginUser)
	r.POST("/api/v1/auth/logout", api.LogoutUser)

	r.GET("/api/v1/posts", api.AllPosts)
	r.GET("/api/v1/post", api.OpenPost)
	r.POST("/api/v1/post/new", api.AuthMiddleware(api.NewPost))
	r.POST("/api/v1/post/update", api.AuthMiddleware(api.UpdatePost))
	r.POST("/api/v1/post/delete", api.AuthMiddleware(api.DeletePost))
	r.POST("/api/v1/adm/reset", api.AuthMiddleware(api.Reset))

	r.POST("/api/v1/comments/new", api.AuthMiddleware(api.NewComment))

	r.GET("/api/v1/stats", api.ReadStats)

	return &api
}

func (a *Api) ListenAndServe(addr string) error {
	log.Info().Msgf("post-store api listening on %s", addr)
	return a.server.ListenAndServe(addr)
}

func (a *Api) Shutdown() error {
	return a.server.Shutdown()
}

func (a *Api) internalErr(ctx *fasthttp.RequestCtx, err error) {
	log.Error().Err(err).Send()
	ctx.SetStatusCode(fasthttp.StatusInternalServerError)
}

// storeErr maps a store error to its status code.
func (a *Api) storeErr(ctx *fasthttp.RequestCtx, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		a.writeJSON(ctx, fasthttp.StatusBadRequest, types.ErrorResp{
			Error: err.Error(),
			Field: vErr.Field,
			Rule:  string(vErr.Rule),
		})
	case errors.Is(err, ErrNotFound):
		a.writeJSON(ctx, fasthttp.StatusNotFound, types.ErrorResp{Error: err.Error()})
	default:
		a.internalErr(ctx, err)
	}
}

func (a *Api) writeJSON(ctx *fasthttp.RequestCtx, code int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		a.internalErr(ctx, err)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(code)
	_, _ = ctx.Write(b)
}

// readDraft decodes the request body, answering 400 itself when the body is
// not a JSON object.
func (a *Api) readDraft(ctx *fasthttp.RequestCtx) (types.Draft, bool) {
	draft, err := DecodeDraft(ctx.PostBody())
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		_, _ = ctx.Write([]byte(err.Error()))
		return types.Draft{}, false
	}
	return draft, true
}

func (a *Api) LoginUser(ctx *fasthttp.RequestCtx, _ fasthttprouter.Params) {
	var req types.LoginReq

	err := json.Unmarshal(ctx.PostBody(), &req)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		return
	}

	err = a.auth.Signin(req.Name, req.Word)
	if err != nil {
		if errors.Is(err, ErrIncorrectName) {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			_, _ = ctx.Write([]byte(err.Error()))
			return
		}
		ctx.SetStatusCode(fasthttp.StatusUnauthorized)
		return
	}

	token, err := a.token.MakeToken(req.Name)
	if err != nil {
		a.internalErr(ctx, err)
		return
	}

	ses := sessions.StartFasthttp(ctx)
	ses.Set(TokenKey, token)

	ctx.SetStatusCode(fasthttp.StatusOK)
}

func (a *Api) LogoutUser(ctx *fasthttp.RequestCtx, _ fasthttprouter.Params) {
	ses := sessions.StartFasthttp(ctx)
	token, ok := ses.Get(TokenKey).(string)
	if !ok {
		ctx.SetStatusCode(fasthttp.StatusUnauthorized)
		return
	}

	err := a.token.DeleteToken(token)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusUnauthorized)
		return
	}

	ses.Delete(TokenKey)

	ctx.SetStatusCode(fasthttp.StatusOK)
}

func (a *Api) AuthMiddleware(next fasthttprouter.Handle) fasthttprouter.Handle {
	return func(ctx *fasthttp.RequestCtx, p fasthttprouter.Params) {
		ses := sessions.StartFasthttp(ctx)
		token, ok := ses.Get(TokenKey).(string)
		if !ok {
			ctx.SetStatusCode(fasthttp.StatusUnauthorized)
			return
		}
		name, err := a.token.NameFromToken(token)
		if err != nil {
			ctx.SetStatusCode(fasthttp.StatusUnauthorized)
			return
		}

		ctx.SetUserValue("_name", name)
		next(ctx, p)
	}
}

func (a *Api) AllPosts(ctx *fasthttp.RequestCtx, _ fasthttprouter.Params) {
	a.writeJSON(ctx, fasthttp.StatusOK, a.posts.GetAll())
}

func (a *Api) OpenPost(ctx *fasthttp.RequestCtx, _ fasthttprouter.Params) {
	title := string(ctx.QueryArgs().Peek("title"))

	post, err := a.posts.GetByTitle(title)
	if err != nil {
		a.storeErr(ctx, err)
		return
	}

	a.stats.CountView(post.Title)

	a.writeJSON(ctx, fasthttp.StatusOK, post)
}

func (a *Api) NewPost(ctx *fasthttp.RequestCtx, _ fasthttprouter.Params) {
	draft, ok := a.readDraft(ctx)
	if !ok {
		return
	}

	post, err := a.posts.Add(draft)
	if err != nil {
		a.storeErr(ctx, err)
		return
	}

	log.Info().Str("title", post.Title).Str("by", nameOf(ctx)).Msg("post added")

	a.writeJSON(ctx, fasthttp.StatusOK, post)
}

func (a *Api) UpdatePost(ctx *fasthttp.RequestCtx, _ fasthttprouter.Params) {
	title := string(ctx.QueryArgs().Peek("title"))

	draft, ok := a.readDraft(ctx)
	if !ok {
		return
	}

	post, err := a.posts.Update(title, draft)
	if err != nil {
		a.storeErr(ctx, err)
		return
	}

	if post.Title != title {
		a.stats.Forget(title)
		a.comments.Forget(title)
	}

	log.Info().Str("title", title).Str("by", nameOf(ctx)).Msg("post updated")

	a.writeJSON(ctx, fasthttp.StatusOK, post)
}

func (a *Api) DeletePost(ctx *fasthttp.RequestCtx, _ fasthttprouter.Params) {
	title := string(ctx.QueryArgs().Peek("title"))

	post, err := a.posts.Delete(title)
	if err != nil {
		a.storeErr(ctx, err)
		return
	}

	a.stats.Forget(title)
	a.comments.Forget(title)

	log.Info().Str("title", title).Str("by", nameOf(ctx)).Msg("post deleted")

	a.writeJSON(ctx, fasthttp.StatusOK, post)
}

func (a *Api) Reset(ctx *fasthttp.RequestCtx, _ fasthttprouter.Params) {
	a.posts.Reset()
	a.stats.ForgetAll()
	a.comments.ForgetAll()

	log.Warn().Str("by", nameOf(ctx)).Msg("store reset")

	ctx.SetStatusCode(fasthttp.StatusOK)
}

func (a *Api) NewComment(ctx *fasthttp.RequestCtx, _ fasthttprouter.Params) {
	var req types.NewCommentReq

	err := json.Unmarshal(ctx.PostBody(), &req)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		return
	}

	if _, err = a.posts.GetByTitle(req.Title); err != nil {
		a.storeErr(ctx, err)
		return
	}

	if req.Comment.User == "" {
		req.Comment.User = nameOf(ctx)
	}
	if req.Comment.Date == "" {
		req.Comment.Date = time.Now().Format("2006-01-02")
	}

	a.comments.Consume(req.Title, req.Comment)

	ctx.SetStatusCode(fasthttp.StatusOK)
}

func (a *Api) ReadStats(ctx *fasthttp.RequestCtx, _ fasthttprouter.Params) {
	title := string(ctx.QueryArgs().Peek("title"))

	a.writeJSON(ctx, fasthttp.StatusOK, types.StatsResp{
		Title: title,
		Views: a.stats.Views(title),
	})
}

func nameOf(ctx *fasthttp.RequestCtx) string {
	name, _ := ctx.UserValue("_name").(string)
	return name
}
