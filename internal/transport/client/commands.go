package client

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Commands provides command-line operations for the client
type Commands struct {
	client *Client
}

// NewCommands creates a new Commands instance
func NewCommands(client *Client) *Commands {
	return &Commands{
		client: client,
	}
}

// Shorten creates a short link and displays the result
func (c *Commands) Shorten(ctx context.Context, longURL, customCode string) error {
	result, err := c.client.Shorten(ctx, longURL, customCode)
	if err != nil {
		return err
	}

	fmt.Printf("Short link created:\n")
	fmt.Printf("Short Code: %s\n", result.ShortCode)
	fmt.Printf("Short URL: %s\n", result.ShortURL)
	fmt.Printf("Long URL: %s\n", result.LongURL)
	fmt.Printf("Created At: %s\n", result.CreatedAt.Format(time.RFC3339))

	return nil
}

// Stats retrieves and displays click statistics for a short code
func (c *Commands) Stats(ctx context.Context, shortCode string) error {
	link, err := c.client.GetStats(ctx, shortCode)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Printf("Short code '%s' not found\n", shortCode)
			return nil
		}
		return err
	}

	fmt.Printf("Link statistics:\n")
	fmt.Printf("Short Code: %s\n", link.ShortCode)
	fmt.Printf("Long URL: %s\n", link.LongURL)
	fmt.Printf("Created At: %s\n", link.CreatedAt.Format(time.RFC3339))
	if link.LastClickedAt != nil {
		fmt.Printf("Last Clicked At: %s\n", link.LastClickedAt.Format(time.RFC3339))
	} else {
		fmt.Printf("Last Clicked At: Never\n")
	}
	fmt.Printf("Click Count: %d\n", link.ClickCount)

	return nil
}

// List displays all short links in a table format
func (c *Commands) List(ctx context.Context) error {
	links, err := c.client.ListLinks(ctx)
	if err != nil {
		return err
	}

	if len(links) == 0 {
		fmt.Println("No links found")
		return nil
	}

	fmt.Printf("%-15s %-50s %-20s %-20s %s\n", "Short Code", "Long URL", "Created At", "Last Clicked", "Clicks")
	fmt.Println(strings.Repeat("-", 120))

	for _, link := range links {
		lastClicked := "Never"
		if link.LastClickedAt != nil {
			lastClicked = link.LastClickedAt.Format("2006-01-02 15:04:05")
		}

		longURL := link.LongURL
		if len(longURL) > 50 {
			longURL = longURL[:47] + "..."
		}

		fmt.Printf("%-15s %-50s %-20s %-20s %d\n",
			link.ShortCode,
			longURL,
			link.CreatedAt.Format("2006-01-02 15:04:05"),
			lastClicked,
			link.ClickCount,
		)
	}

	return nil
}
