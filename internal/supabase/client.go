package supabase

import (
	"fmt"
	"strings"

	"github.com/supabase-community/supabase-go"
)

// Client holds the project-wide Supabase client. It is created once at
// startup with the service-role key.
type Client struct {
	Supabase *supabase.Client
	url      string
}

func NewClient(projectURL, serviceKey string) (*Client, error) {
	projectURL = strings.TrimRight(projectURL, "/")
	client, err := supabase.NewClient(projectURL, serviceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &Client{
		Supabase: client,
		url:      projectURL,
	}, nil
}

// Bucket returns an object store over one storage bucket of the project.
func (c *Client) Bucket(bucket string) *StorageClient {
	return newStorageClient(c.Supabase.Storage, c.url, bucket)
}
