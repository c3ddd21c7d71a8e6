package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"linkwatch/internal/domain"
)

const embedColor = 0x5865F2

var platformIcons = map[domain.Platform]string{
	domain.PlatformYouTube:   "🎬",
	domain.PlatformTwitter:   "𝕏",
	domain.PlatformInstagram: "📷",
	domain.PlatformReddit:    "🔴",
	domain.PlatformTelegram:  "📱",
	domain.PlatformTikTok:    "🎵",
}

var contentTypeLabels = map[domain.ContentType]string{
	domain.ContentTypePost:      "Post",
	domain.ContentTypeVideo:     "Video",
	domain.ContentTypeTweet:     "Tweet",
	domain.ContentTypeReel:      "Reel",
	domain.ContentTypeLiveStart: "Live Stream",
	domain.ContentTypeStory:     "Story",
	domain.ContentTypePhoto:     "Photo",
}

// ChannelSender is the slice of the Discord session the notifier needs.
type ChannelSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord posts announcement embeds to guild channels.
type Discord struct {
	session ChannelSender
	logger  *slog.Logger
}

func NewDiscord(session ChannelSender, logger *slog.Logger) *Discord {
	return &Discord{
		session: session,
		logger:  logger.With("component", "notifier"),
	}
}

func (d *Discord) Send(ctx context.Context, channelID string, link *domain.Link, event *domain.LinkEvent) error {
	embed := AnnouncementEmbed(link, event)

	if _, err := d.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send embed to channel %s: %w", channelID, err)
	}

	d.logger.Debug("announcement sent",
		"channel_id", channelID,
		"link_id", link.ID,
		"content_id", event.ContentID,
	)
	return nil
}

// AnnouncementEmbed renders one detected piece of content as a Discord embed.
func AnnouncementEmbed(link *domain.Link, event *domain.LinkEvent) *discordgo.MessageEmbed {
	icon, ok := platformIcons[link.Platform]
	if !ok {
		icon = "📌"
	}
	label, ok := contentTypeLabels[event.ContentType]
	if !ok {
		label = string(event.ContentType)
	}

	description := "No description available"
	if event.Title != nil && *event.Title != "" {
		description = *event.Title
	} else if event.Description != nil && *event.Description != "" {
		description = *event.Description
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s New %s from %s", icon, label, link.ProfileHandle),
		Description: description,
		URL:         event.URL,
		Color:       embedColor,
		Timestamp:   event.PublishedAt.Format("2006-01-02T15:04:05Z07:00"),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s on %s", link.ProfileHandle, link.Platform),
		},
	}

	if event.MediaURL != nil && *event.MediaURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: *event.MediaURL}
	}

	return embed
}
