package feed

import (
	"time"

	"github.com/feedline-dev/feedline/internal/domain"
)

// SeedPosts returns the static filler posts shown before (or instead of) the
// remote collection. They are never reordered by a merge and never acquire a
// server id, so they cannot be deleted remotely or grow comment threads.
func SeedPosts(now time.Time) []domain.Post {
	return []domain.Post{
		{
			LocalKey: "seed-1",
			Author: &domain.Author{
				Name:      "Vicky",
				Handle:    "vickyfilm",
				AvatarRef: "avatar1.jpg",
			},
			Text:         "Just watched the new sci-fi blockbuster and I'm blown away! Who else has seen it? Let's discuss!",
			ImageRef:     "movies.jpg",
			LikeCount:    78,
			CommentCount: 12,
			CreatedAt:    now.Add(-1 * time.Hour),
		},
		{
			LocalKey: "seed-2",
			Author: &domain.Author{
				Name:      "Skanda",
				Handle:    "skanda_travels",
				AvatarRef: "avatar2.jpg",
			},
			Text:         "Exploring the serene beauty of Bali! #Wanderlust",
			ImageRef:     "travel.avif",
			LikeCount:    134,
			Liked:        true,
			CommentCount: 25,
			CreatedAt:    now.Add(-3 * time.Hour),
		},
		{
			LocalKey: "seed-3",
			Author: &domain.Author{
				Name:      "Megha",
				Handle:    "foodiej",
				AvatarRef: "avatar3.jpg",
			},
			Text:         "Tried this new ramen place downtown… absolutely delicious! Highly recommend it!",
			ImageRef:     "food.webp",
			LikeCount:    95,
			CommentCount: 16,
			CreatedAt:    now.Add(-5 * time.Hour),
		},
	}
}
