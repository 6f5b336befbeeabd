package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/simonindia/hr-portal/internal/api/metrics"
	"github.com/simonindia/hr-portal/internal/core/domain"
	"github.com/simonindia/hr-portal/internal/core/ports"
)

// NewsHandler handles HTTP requests for news posts, including the multipart
// image attachment on create and update.
type NewsHandler struct {
	service ports.NewsService
	images  ports.ImageStore
}

func NewNewsHandler(service ports.NewsService, images ports.ImageStore) *NewsHandler {
	return &NewsHandler{service: service, images: images}
}

type listPostsResponse struct {
	Success bool           `json:"success"`
	Posts   []postResponse `json:"posts"`
}

type createPostResponse struct {
	Success bool `json:"success"`
	PostID  int  `json:"post_id"`
}

// List handles GET /api/news — public, newest first.
//
// @Summary      List news posts
// @Tags         news
// @Produce      json
// @Success      200  {object}  listPostsResponse
// @Failure      500  {object}  errorEnvelope
// @Router       /api/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return c.JSON(http.StatusOK, listPostsResponse{Success: true, Posts: out})
}

// Create handles POST /api/news — multipart form with an optional image.
//
// @Summary      Create a news post
// @Tags         news
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title     formData  string  true   "Post title"
// @Param        category  formData  string  false  "Category (defaults to General)"
// @Param        content   formData  string  true   "Post body"
// @Param        image     formData  file    false  "Image attachment"
// @Success      201       {object}  createPostResponse
// @Failure      400       {object}  errorEnvelope
// @Failure      401       {object}  errorEnvelope
// @Failure      500       {object}  errorEnvelope
// @Router       /api/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	imagePath, err := h.saveUpload(c)
	if err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:     c.FormValue("title"),
		Category:  c.FormValue("category"),
		Content:   c.FormValue("content"),
		ImagePath: imagePath,
		Author:    ctxUsername(c),
	})
	if err != nil {
		// The upload landed before validation; do not leave it orphaned.
		if imagePath != "" {
			_ = h.images.Remove(imagePath)
		}
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createPostResponse{Success: true, PostID: id})
}

// Update handles PUT /api/news/:id. A new image replaces the old one;
// omitting the image keeps the current attachment.
//
// @Summary      Update a news post
// @Tags         news
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      int     true   "Post id"
// @Param        title     formData  string  true   "Post title"
// @Param        category  formData  string  false  "Category"
// @Param        content   formData  string  true   "Post body"
// @Param        image     formData  file    false  "Replacement image"
// @Success      200       {object}  successEnvelope
// @Failure      400       {object}  errorEnvelope
// @Failure      401       {object}  errorEnvelope
// @Failure      404       {object}  errorEnvelope
// @Router       /api/news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}

	imagePath, err := h.saveUpload(c)
	if err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), ports.UpdatePostInput{
		ID:        id,
		Title:     c.FormValue("title"),
		Category:  c.FormValue("category"),
		Content:   c.FormValue("content"),
		ImagePath: imagePath,
	})
	if err != nil {
		if imagePath != "" {
			_ = h.images.Remove(imagePath)
		}
		return err
	}

	return c.JSON(http.StatusOK, successEnvelope{Success: true, Message: "Post updated successfully"})
}

// Delete handles DELETE /api/news/:id — removes the record and its image.
//
// @Summary      Delete a news post
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post id"
// @Success      200  {object}  successEnvelope
// @Failure      401  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /api/news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.PostsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, successEnvelope{Success: true, Message: "Post deleted successfully"})
}

// ServeImage handles GET /uploads/images/:filename — returns a stored image
// by its server-generated name. Lookup is confined to the flat upload root.
//
// @Summary      Fetch a stored post image
// @Tags         news
// @Produce      octet-stream
// @Param        filename  path  string  true  "Stored filename"
// @Success      200
// @Failure      404  {object}  errorEnvelope
// @Router       /uploads/images/{filename} [get]
func (h *NewsHandler) ServeImage(c echo.Context) error {
	full, err := h.images.Resolve(c.Param("filename"))
	if err != nil {
		return err
	}
	return c.File(full)
}

// saveUpload stores the optional "image" form file and returns its relative
// path, or "" when the request carries no image.
func (h *NewsHandler) saveUpload(c echo.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid upload")
	}

	path, err := h.images.Save(file)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedFileType):
			metrics.UploadsRejectedTotal.WithLabelValues("extension").Inc()
		case errors.Is(err, domain.ErrFileTooLarge):
			metrics.UploadsRejectedTotal.WithLabelValues("size").Inc()
		}
		return "", err
	}
	return path, nil
}
