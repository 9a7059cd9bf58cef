package github

import "github.com/aryanbv/folio/internal/profile"

// FallbackMessage is shown next to fallback numbers.
const FallbackMessage = "Some data may be cached due to API limitations"

// Fallback values substituted when the profile or repository request fails.
const (
	FallbackRepositories = 20
	FallbackStars        = 45
	FallbackForks        = 15
	FallbackFollowers    = 28
	FallbackFollowing    = 35
)

// FallbackLanguages is the language breakdown used with a fallback snapshot.
var FallbackLanguages = []profile.LanguageShare{
	{Name: "JavaScript", Percentage: 35},
	{Name: "Python", Percentage: 25},
	{Name: "Java", Percentage: 20},
	{Name: "TypeScript", Percentage: 15},
	{Name: "CSS", Percentage: 5},
}

func (c *Client) fallbackSnapshot() *profile.Snapshot {
	langs := make([]profile.LanguageShare, len(FallbackLanguages))
	copy(langs, FallbackLanguages)

	return &profile.Snapshot{
		Source:            profile.SourceGitHub,
		Status:            profile.StatusFallback,
		FetchedAt:         c.now().UTC(),
		Message:           FallbackMessage,
		RepositoryCount:   FallbackRepositories,
		StarCount:         FallbackStars,
		ForkCount:         FallbackForks,
		FollowerCount:     FallbackFollowers,
		FollowingCount:    FallbackFollowing,
		LanguageBreakdown: langs,
	}
}
