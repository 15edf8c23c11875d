package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/theamazingmrb/portfolio-sub000"
	"github.com/theamazingmrb/portfolio-sub000/internal/feed"
)

// PostPage is the body of GET /api/posts.
type PostPage struct {
	Posts      []portfolio.Post `json:"posts"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) listPosts(c *gin.Context) {
	limit, err := positiveQuery(c, "limit", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	page, err := positiveQuery(c, "page", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Paginate(s.store.ListPosts(), c.Query("tag"), limit, page))
}

// Paginate filters posts by tag (ignored when empty) and slices out one
// page. A limit of zero puts every matching post on a single page.
func Paginate(posts []portfolio.Post, tag string, limit, page int) PostPage {
	filtered := posts
	if tag != "" {
		filtered = make([]portfolio.Post, 0, len(posts))
		for _, p := range posts {
			if p.HasTag(tag) {
				filtered = append(filtered, p)
			}
		}
	}

	total := len(filtered)
	perPage := limit
	if perPage == 0 {
		perPage = total
	}

	out := PostPage{Posts: []portfolio.Post{}, Total: total, Page: page}
	if perPage == 0 {
		return out
	}
	out.TotalPages = (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= total {
		return out
	}
	end := min(start+perPage, total)
	out.Posts = filtered[start:end]
	return out
}

func positiveQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.New(name + " must be a positive integer")
	}
	return n, nil
}

func (s *Server) getPost(c *gin.Context) {
	id := c.Param("id")
	post, err := s.store.GetPost(id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, post)
	case errors.Is(err, portfolio.ErrNotFound), errors.Is(err, portfolio.ErrMissingRequiredField):
		if !errors.Is(err, portfolio.ErrNotFound) {
			s.logger.Warnf("post %q is invalid: %v", id, err)
		}
		c.JSON(http.StatusNotFound, errorBody{Error: "post not found"})
	default:
		s.logger.Errorf("loading post %q: %v", id, err)
		c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

func (s *Server) postIDs(c *gin.Context) {
	ids, err := s.store.ListPostIDs()
	if err != nil {
		s.logger.Errorf("listing post ids: %v", err)
		c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ids": ids})
}

func (s *Server) rss(c *gin.Context) {
	ch := s.opts.Channel
	if ch.SelfURL == "" && ch.Link != "" {
		ch.SelfURL = strings.TrimRight(ch.Link, "/") + "/rss.xml"
	}
	out, err := s.feed.Run(ch, s.store.ListPosts())
	if err != nil {
		s.logger.Errorf("rendering feed: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, feed.ContentType, []byte(out))
}

func (s *Server) health(c *gin.Context) {
	status := http.StatusOK
	body := gin.H{"status": "ok", "version": s.opts.Version}
	if _, err := s.store.ListPostIDs(); err != nil {
		status = http.StatusServiceUnavailable
		body["status"] = "content unavailable"
	}
	c.JSON(status, body)
}
