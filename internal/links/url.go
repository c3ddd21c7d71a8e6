package links

import (
	"regexp"

	"linkwatch/internal/domain"
)

// ParsedProfile is the identity extracted from a pasted profile URL.
type ParsedProfile struct {
	Handle    string
	ProfileID *string
}

var (
	youtubeChannelPattern = regexp.MustCompile(`(?i)youtube\.com/channel/([a-zA-Z0-9_-]+)`)
	youtubePatterns       = []*regexp.Regexp{
		regexp.MustCompile(`(?i)youtube\.com/@([a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`(?i)youtube\.com/user/([a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`(?i)youtube\.com/c/([a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`(?i)youtu\.be/([a-zA-Z0-9_-]+)`),
	}
	twitterPattern   = regexp.MustCompile(`(?i)(?:twitter|x)\.com/([a-zA-Z0-9_]+)(?:/|$)`)
	instagramPattern = regexp.MustCompile(`(?i)instagram\.com/([a-zA-Z0-9_.]+)(?:/|$)`)
	redditPatterns   = []*regexp.Regexp{
		regexp.MustCompile(`(?i)reddit\.com/user/([a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`(?i)reddit\.com/r/([a-zA-Z0-9_-]+)`),
	}
	telegramPattern = regexp.MustCompile(`(?i)t\.me/([a-zA-Z0-9_]+)(?:/|$)`)
	tiktokPatterns  = []*regexp.Regexp{
		regexp.MustCompile(`(?i)tiktok\.com/@([a-zA-Z0-9_.-]+)`),
		regexp.MustCompile(`(?i)vm\.tiktok\.com/([a-zA-Z0-9]+)`),
	}
)

// ParseProfileURL extracts the profile handle from a full profile URL.
// YouTube channel URLs also yield the channel id, which saves the fetcher a
// resolution round trip.
func ParseProfileURL(platform domain.Platform, url string) (*ParsedProfile, error) {
	switch platform {
	case domain.PlatformYouTube:
		if m := youtubeChannelPattern.FindStringSubmatch(url); m != nil {
			id := m[1]
			return &ParsedProfile{Handle: m[1], ProfileID: &id}, nil
		}
		if p := firstMatch(youtubePatterns, url); p != nil {
			return p, nil
		}
	case domain.PlatformTwitter:
		if m := twitterPattern.FindStringSubmatch(url); m != nil {
			return &ParsedProfile{Handle: m[1]}, nil
		}
	case domain.PlatformInstagram:
		if m := instagramPattern.FindStringSubmatch(url); m != nil {
			return &ParsedProfile{Handle: m[1]}, nil
		}
	case domain.PlatformReddit:
		if p := firstMatch(redditPatterns, url); p != nil {
			return p, nil
		}
	case domain.PlatformTelegram:
		if m := telegramPattern.FindStringSubmatch(url); m != nil {
			return &ParsedProfile{Handle: m[1]}, nil
		}
	case domain.PlatformTikTok:
		if p := firstMatch(tiktokPatterns, url); p != nil {
			return p, nil
		}
	}
	return nil, ErrInvalidProfileURL
}

func firstMatch(patterns []*regexp.Regexp, url string) *ParsedProfile {
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return &ParsedProfile{Handle: m[1]}
		}
	}
	return nil
}
