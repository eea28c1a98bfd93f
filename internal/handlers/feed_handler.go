package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/anonto42/mini-insta/backend/internal/cache"
	"github.com/anonto42/mini-insta/backend/internal/models"
	"github.com/anonto42/mini-insta/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// feedCacheTTL keeps a feed page hot briefly; follow changes invalidate
// the profile's pages eagerly, new posts age in within this window.
const feedCacheTTL = 30 * time.Second

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	postRepository    repositories.PostRepository
	profileRepository repositories.ProfileRepository
	followRepository  repositories.FollowRepository
	likeRepository    repositories.LikeRepository
	feedCache         *cache.Cache
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	postRepo repositories.PostRepository,
	profileRepo repositories.ProfileRepository,
	followRepo repositories.FollowRepository,
	likeRepo repositories.LikeRepository,
	feedCache *cache.Cache,
) *FeedHandler {
	return &FeedHandler{
		postRepository:    postRepo,
		profileRepository: profileRepo,
		followRepository:  followRepo,
		likeRepository:    likeRepo,
		feedCache:         feedCache,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// EnrichedPost is a post with author info and user-specific flags
type EnrichedPost struct {
	models.Post
	Author  models.ProfileCompact `json:"author"`
	IsLiked bool                  `json:"is_liked"`
}

// feedPage is the cached representation of one feed response
type feedPage struct {
	Posts      []EnrichedPost `json:"posts"`
	TotalItems int64          `json:"total_items"`
}

// FeedCacheKey builds the cache key for one page of a profile's feed
func FeedCacheKey(profileID uint, page, limit int) string {
	return fmt.Sprintf("feed:%d:%d:%d", profileID, page, limit)
}

// GetFeed returns the time-ordered union of posts from every profile the
// authenticated profile follows, never including its own posts.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentProfileID := getProfileIDFromContext(c)
	if currentProfileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var result feedPage
	err := h.feedCache.Aside(c.Request().Context(), FeedCacheKey(currentProfileID, page, limit), &result, feedCacheTTL, func() error {
		built, err := h.buildFeedPage(currentProfileID, page, limit)
		if err != nil {
			return err
		}
		result = *built
		return nil
	})
	if err != nil {
		return httpError(err)
	}

	totalPages := int(math.Ceil(float64(result.TotalItems) / float64(limit)))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"posts": result.Posts,
		},
		"meta": echo.Map{
			"currentPage":     page,
			"totalPages":      totalPages,
			"totalItems":      result.TotalItems,
			"itemsPerPage":    limit,
			"hasNextPage":     page < totalPages,
			"hasPreviousPage": page > 1,
		},
	})
}

// buildFeedPage assembles one page of the feed from the store
func (h *FeedHandler) buildFeedPage(profileID uint, page, limit int) (*feedPage, error) {
	followingIDs, err := h.followRepository.GetFollowingIDs(profileID)
	if err != nil {
		return nil, err
	}

	skip := (page - 1) * limit
	posts, err := h.postRepository.GetFeedPosts(followingIDs, skip, limit)
	if err != nil {
		return nil, err
	}

	totalItems, err := h.postRepository.CountFeedPosts(followingIDs)
	if err != nil {
		return nil, err
	}

	// Resolve each author once per page
	authorMap := make(map[uint]models.ProfileCompact)
	for _, p := range posts {
		if _, ok := authorMap[p.ProfileID]; ok {
			continue
		}
		author, err := h.profileRepository.GetProfileByID(p.ProfileID)
		if err == nil {
			authorMap[p.ProfileID] = author.ToCompact()
		}
	}

	enriched := make([]EnrichedPost, len(posts))
	for i, p := range posts {
		photos, err := h.postRepository.GetPhotosByPostID(p.ID)
		if err == nil {
			p.Photos = photos
		}
		liked, _ := h.likeRepository.HasProfileLikedPost(profileID, p.ID)
		enriched[i] = EnrichedPost{
			Post:    p,
			Author:  authorMap[p.ProfileID],
			IsLiked: liked,
		}
	}

	return &feedPage{Posts: enriched, TotalItems: totalItems}, nil
}
