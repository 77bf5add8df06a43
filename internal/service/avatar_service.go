package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// AvatarUserStore persists a user's chosen avatar.
type AvatarUserStore interface {
	UpdateAvatar(userID uint, avatarURL string) error
}

// AvatarService fetches Ready Player Me avatar binaries so browsers
// can load them without tripping over the origin's CORS policy.
type AvatarService struct {
	client *http.Client
	users  AvatarUserStore
}

func NewAvatarService(users AvatarUserStore) *AvatarService {
	return &AvatarService{
		client: &http.Client{Timeout: 30 * time.Second},
		users:  users,
	}
}

// Fetch downloads the avatar at the given URL and returns the raw
// bytes. No retries; the client asks again when it wants to.
func (s *AvatarService) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("avatar fetch failed with status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// UpdateAvatar stores the user's chosen avatar URL.
func (s *AvatarService) UpdateAvatar(userID uint, avatarURL string) error {
	return s.users.UpdateAvatar(userID, avatarURL)
}
