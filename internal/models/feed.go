package models

import (
	"sync"

	"github.com/google/uuid"
)

// AnonymousAuthor is the display author for community posts.
const AnonymousAuthor = "Anonymous"

type CommunityPost struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Text   string `json:"text"`
	Likes  int    `json:"likes"`
	Date   string `json:"date"`
}

// Feed is an append-only post list, newest first.
type Feed struct {
	Mutex sync.RWMutex
	posts []*CommunityPost
}

// NewFeed seeds the feed with the starter posts shown before anyone writes.
func NewFeed() *Feed {
	return &Feed{
		posts: []*CommunityPost{
			{ID: uuid.NewString(), Author: AnonymousAuthor, Text: "Grateful for small victories today", Likes: 8, Date: "2026-01-04"},
			{ID: uuid.NewString(), Author: AnonymousAuthor, Text: "Taking things one day at a time 💜", Likes: 12, Date: "2026-01-03"},
		},
	}
}

func (f *Feed) Prepend(post *CommunityPost) {
	f.Mutex.Lock()
	defer f.Mutex.Unlock()
	f.posts = append([]*CommunityPost{post}, f.posts...)
}

func (f *Feed) Len() int {
	f.Mutex.RLock()
	defer f.Mutex.RUnlock()
	return len(f.posts)
}

func (f *Feed) List() []*CommunityPost {
	f.Mutex.RLock()
	defer f.Mutex.RUnlock()

	copySlice := make([]*CommunityPost, len(f.posts))
	copy(copySlice, f.posts)
	return copySlice
}

func (f *Feed) PutData(posts []*CommunityPost) {
	f.Mutex.Lock()
	defer f.Mutex.Unlock()
	f.posts = posts
}
