package s11a

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/funsaized/s11a/content"
)

func (a *App) handleHome(c echo.Context) error {
	tag := c.QueryParam("tag")
	category := c.QueryParam("category")
	posts, err := a.Cache.ListPosts(tag, category)
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	categories, err := a.Cache.ListCategories()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(posts, tag, category, tags, categories, a.Config.URL))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	posts, err := a.Cache.ListPosts("", "")
	if err != nil {
		return err
	}
	return Render(c, a.Views.Post(a.buildPostPage(post, posts), a.Config.URL))
}

// buildPostPage derives everything a post template needs from the stored
// post: the body with heading anchors injected, the table of contents built
// from those same headings, the reading-time estimate, a relative date
// label, and related posts ranked by tag and category overlap.
func (a *App) buildPostPage(post Post, pool []Post) PostPage {
	item := post.Item()
	body := content.EnsureHeadingIDs(item.Body, content.DefaultMaxHeadingDepth)
	return PostPage{
		Post:        post,
		Body:        body,
		TOC:         content.BuildHeadingTree(body, content.DefaultMaxHeadingDepth),
		ReadingTime: content.EstimateReadingTime(body, content.DefaultWordsPerMinute),
		DateLabel:   content.FormatRelativeDate(item.Date, time.Now()),
		Related:     content.FindRelated(item, postItems(pool), content.DefaultRelatedLimit),
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("", "")
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("", "")
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
