package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"mindtrackerd/internal/models"
	"mindtrackerd/internal/providers"
	"mindtrackerd/internal/tracker/interfaces"
)

type CommunityServiceInterface interface {
	AddPost(author, text string, now time.Time) (*models.CommunityPost, bool)
	Posts() []*models.CommunityPost
	PostCount() int
}

type CommunityService struct {
	feed        *models.Feed
	entitlement EntitlementServiceInterface
	persister   interfaces.SchedulerInterface
	logger      providers.Logger
}

func NewCommunityService(feed *models.Feed, entitlement EntitlementServiceInterface, persister interfaces.SchedulerInterface, logger providers.Logger) CommunityServiceInterface {
	return &CommunityService{
		feed:        feed,
		entitlement: entitlement,
		persister:   persister,
		logger:      logger,
	}
}

// AddPost prepends a post when the entitlement allows it. Non-pro writes and
// empty text are silently rejected, not errors: there is no server to
// enforce anything stricter, and the UI treats the gate as a soft wall.
func (s *CommunityService) AddPost(author, text string, now time.Time) (*models.CommunityPost, bool) {
	text = strings.TrimSpace(text)
	if text == "" || !s.entitlement.IsPro() {
		return nil, false
	}

	if author == "" {
		author = models.AnonymousAuthor
	}
	post := &models.CommunityPost{
		ID:     uuid.NewString(),
		Author: author,
		Text:   text,
		Likes:  0,
		Date:   now.Format(models.DateLayout),
	}
	s.feed.Prepend(post)

	if err := s.persister.Persist(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Community post saved in memory but not persisted: %s", err)
	}
	return post, true
}

func (s *CommunityService) Posts() []*models.CommunityPost {
	return s.feed.List()
}

func (s *CommunityService) PostCount() int {
	return s.feed.Len()
}
