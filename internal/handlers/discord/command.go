package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorSuccess = 0x00ff00
	colorInfo    = 0x5865f2
	colorWarning = 0xffa500
	colorError   = 0xff0000
)

// customIDSeparator splits a component custom ID into command name, action
// and argument
const customIDSeparator = ":"

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// ComponentHandler is implemented by commands that post buttons. Custom IDs
// must start with the command name followed by customIDSeparator.
type ComponentHandler interface {
	HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// interactionUserID returns the caller in guilds and in direct messages
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// embedResponse builds an ephemeral embed response with optional buttons
func embedResponse(embed *discordgo.MessageEmbed, buttons ...discordgo.MessageComponent) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	}

	// Create action row for buttons
	if len(buttons) > 0 {
		data.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		}
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// updateResponse replaces the message a button was attached to
func updateResponse(embed *discordgo.MessageEmbed) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{},
		},
	}
}

// contentResponse sends plain text, visible to the channel when public is set
func contentResponse(content string, public bool) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Content: content,
	}
	if !public {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// errorResponse sends an ephemeral error embed
func errorResponse(title, message string) *discordgo.InteractionResponse {
	return embedResponse(&discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorError,
	})
}
