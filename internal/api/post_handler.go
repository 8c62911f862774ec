package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/service"
)

// PostHandler handles the blog's HTTP requests.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostService) *PostHandler {
	if postService == nil {
		panic("postService cannot be nil")
	}
	return &PostHandler{
		postService: postService,
	}
}

// GetPost handles GET /posts/{id} requests.
// Responds 200 with the full post representation, comments included.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, violations := ValidatePathID("id", chi.URLParam(r, "id"))
	if violations != nil {
		RespondWithValidationErrors(w, r, violations)
		return
	}

	post, err := h.postService.GetPostByID(r.Context(), id)
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// ListPosts handles GET /posts requests.
// Responds 200 with summary representations carrying comment counts.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.GetAllPosts(r.Context())
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	summaries := make([]PostSummaryResponse, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, postToSummaryResponse(post))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summaries)
}

// CreatePost handles POST /posts requests.
// Responds 201 with the created post and its assigned ID.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		RespondWithMalformedBody(w, r, err)
		return
	}

	if violations := ValidateRequest(req); violations != nil {
		RespondWithValidationErrors(w, r, violations)
		return
	}

	post, err := h.postService.CreatePost(r.Context(), req.Title, req.Content)
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, postToCreatedResponse(post))
}

// CreateComment handles POST /posts/{id}/comments requests.
// Responds 201 with the created comment representation.
func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, violations := ValidatePathID("id", chi.URLParam(r, "id"))
	if violations != nil {
		RespondWithValidationErrors(w, r, violations)
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		RespondWithMalformedBody(w, r, err)
		return
	}

	if violations := ValidateRequest(req); violations != nil {
		RespondWithValidationErrors(w, r, violations)
		return
	}

	comment, err := h.postService.CreateComment(r.Context(), id, req.Message)
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, commentToResponse(comment))
}
